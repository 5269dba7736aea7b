package usecase

import (
	"context"
	"testing"
	"time"

	"timetable/domain"
)

type fakeScheduleRepo struct {
	created    *domain.ScheduleEntry
	lastFilter domain.ScheduleFilter
	createErr  error
}

func (f *fakeScheduleRepo) CreateEntry(_ context.Context, entry *domain.ScheduleEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	entry.ID = 1
	stored := *entry
	f.created = &stored
	return nil
}

func (f *fakeScheduleRepo) GetEntries(_ context.Context, filter domain.ScheduleFilter) (*[]domain.ScheduleEntryDetails, error) {
	f.lastFilter = filter
	return &[]domain.ScheduleEntryDetails{}, nil
}

func (f *fakeScheduleRepo) GetEntryByID(_ context.Context, id int) (*domain.ScheduleEntryDetails, error) {
	if f.created == nil || f.created.ID != id {
		return nil, &domain.NotFoundError{Resource: "schedule entry", ID: id}
	}
	return &domain.ScheduleEntryDetails{ScheduleEntry: *f.created}, nil
}

func (f *fakeScheduleRepo) UpdateEntry(_ context.Context, id int, _ *domain.ScheduleEntryUpdate) (*domain.ScheduleEntryDetails, error) {
	return nil, &domain.NotFoundError{Resource: "schedule entry", ID: id}
}

func (f *fakeScheduleRepo) DeleteEntry(_ context.Context, id int) error {
	return &domain.NotFoundError{Resource: "schedule entry", ID: id}
}

func TestCreateEntryDefaults(t *testing.T) {
	repo := &fakeScheduleRepo{}
	uc := NewScheduleUseCase(repo, time.Second)

	entry := testEntry()
	entry.ID = 0
	entry.Status = domain.StatusCancelled
	entry.SubstituteTeacherID = intp(2)
	entry.OriginalClassroomID = intp(9)
	entry.ChangeRequestID = intp(3)

	details, err := uc.CreateEntryUC(context.Background(), entry)
	if err != nil {
		t.Fatalf("CreateEntryUC failed: %v", err)
	}

	if repo.created.Status != domain.StatusScheduled {
		t.Errorf("status = %s, want scheduled", repo.created.Status)
	}
	if repo.created.SubstituteTeacherID != nil || repo.created.OriginalClassroomID != nil || repo.created.ChangeRequestID != nil {
		t.Error("new entries must not carry substitution state")
	}
	if details.ID != 1 {
		t.Errorf("details id = %d, want 1", details.ID)
	}
}

func TestCreateEntryConflictPropagates(t *testing.T) {
	repo := &fakeScheduleRepo{createErr: &domain.ConflictError{
		DayOfWeek: domain.Monday, TimeSlotID: 1, ConflictingEntryID: 7,
	}}
	uc := NewScheduleUseCase(repo, time.Second)

	_, err := uc.CreateEntryUC(context.Background(), testEntry())
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestGetEntriesRoleScope(t *testing.T) {
	tests := []struct {
		name        string
		actor       *domain.Claims
		wantGroup   *int
		wantTeacher *int
	}{
		{
			name:      "Student Sees Own Group",
			actor:     &domain.Claims{UserID: 30, Role: domain.RoleStudent, GroupID: intp(3)},
			wantGroup: intp(3),
		},
		{
			name:        "Teacher Sees Own Classes",
			actor:       &domain.Claims{UserID: 20, Role: domain.RoleTeacher, TeacherID: intp(1)},
			wantGroup:   intp(8),
			wantTeacher: intp(1),
		},
		{
			name:      "Admin Filter Untouched",
			actor:     &domain.Claims{UserID: 10, Role: domain.RoleAdmin},
			wantGroup: intp(8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			uc := NewScheduleUseCase(repo, time.Second)

			filter := domain.ScheduleFilter{GroupID: intp(8)}
			if _, err := uc.GetEntriesUC(context.Background(), filter, tt.actor); err != nil {
				t.Fatalf("GetEntriesUC failed: %v", err)
			}

			got := repo.lastFilter
			if !intPtrEq(got.GroupID, tt.wantGroup) {
				t.Errorf("group filter = %v, want %v", fmtPtr(got.GroupID), fmtPtr(tt.wantGroup))
			}
			if !intPtrEq(got.TeacherID, tt.wantTeacher) {
				t.Errorf("teacher filter = %v, want %v", fmtPtr(got.TeacherID), fmtPtr(tt.wantTeacher))
			}
		})
	}
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

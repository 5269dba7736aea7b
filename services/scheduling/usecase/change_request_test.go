package usecase

import (
	"context"
	"testing"
	"time"

	"timetable/domain"
)

type fakeRequestRepo struct {
	entries      map[int]*domain.ScheduleEntry
	requests     map[int]*domain.ChangeRequest
	nextID       int
	savedRequest *domain.ChangeRequest
	savedEntry   *domain.ScheduleEntry
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		entries:  map[int]*domain.ScheduleEntry{},
		requests: map[int]*domain.ChangeRequest{},
		nextID:   1,
	}
}

func (f *fakeRequestRepo) CreateRequest(_ context.Context, request *domain.ChangeRequest) error {
	request.ID = f.nextID
	f.nextID++
	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeRequestRepo) GetRequests(_ context.Context, filter domain.ChangeRequestFilter) (*[]domain.ChangeRequest, error) {
	out := []domain.ChangeRequest{}
	for _, r := range f.requests {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.CreatedBy != nil && r.CreatedBy != *filter.CreatedBy {
			continue
		}
		out = append(out, *r)
	}
	return &out, nil
}

func (f *fakeRequestRepo) GetRequestByID(_ context.Context, id int) (*domain.ChangeRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "change request", ID: id}
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequestRepo) FindEntry(_ context.Context, entryID int) (*domain.ScheduleEntry, error) {
	e, ok := f.entries[entryID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "schedule entry", ID: entryID}
	}
	copied := *e
	return &copied, nil
}

func (f *fakeRequestRepo) SaveDecision(_ context.Context, request *domain.ChangeRequest, entry *domain.ScheduleEntry) error {
	savedRequest := *request
	f.savedRequest = &savedRequest
	f.requests[request.ID] = &savedRequest
	if entry != nil {
		savedEntry := *entry
		f.savedEntry = &savedEntry
		f.entries[entry.ID] = &savedEntry
	}
	return nil
}

type fakeNotificationRepo struct {
	created []domain.Notification
}

func (f *fakeNotificationRepo) CreateNotifications(_ context.Context, notifications []domain.Notification) error {
	f.created = append(f.created, notifications...)
	return nil
}

func (f *fakeNotificationRepo) GetByUser(_ context.Context, _ int, _ bool) (*[]domain.Notification, error) {
	return &[]domain.Notification{}, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id, _ int) (*domain.Notification, error) {
	return nil, &domain.NotFoundError{Resource: "notification", ID: id}
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ int) error { return nil }

func (f *fakeNotificationRepo) Delete(_ context.Context, _, _ int) error { return nil }

type fakeUserRepo struct {
	admins   []domain.User
	students []domain.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, _ *domain.User) error { return nil }

func (f *fakeUserRepo) GetAllUsers(_ context.Context) (*[]domain.User, error) {
	return &[]domain.User{}, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int) (*domain.User, error) {
	return nil, &domain.NotFoundError{Resource: "user", ID: id}
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, _ *domain.User) error { return nil }

func (f *fakeUserRepo) DeleteUser(_ context.Context, _ int) error { return nil }

func (f *fakeUserRepo) FindAdminTier(_ context.Context) (*[]domain.User, error) {
	return &f.admins, nil
}

func (f *fakeUserRepo) FindStudentsByGroup(_ context.Context, _ int) (*[]domain.User, error) {
	return &f.students, nil
}

func intp(v int) *int { return &v }

func testEntry() *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ID:          5,
		DayOfWeek:   domain.Monday,
		Status:      domain.StatusScheduled,
		GroupID:     3,
		SubjectID:   2,
		TeacherID:   1,
		ClassroomID: 7,
		TimeSlotID:  1,
	}
}

func testWorkflow(requestRepo *fakeRequestRepo, notifRepo *fakeNotificationRepo, userRepo *fakeUserRepo) domain.ChangeRequestUseCase {
	return NewChangeRequestUseCase(requestRepo, notifRepo, userRepo, time.Second)
}

var (
	adminActor = &domain.Claims{UserID: 10, Username: "admin", Role: domain.RoleAdmin}
	ownerActor = &domain.Claims{UserID: 20, Username: "owner", Role: domain.RoleTeacher, TeacherID: intp(1)}
	otherActor = &domain.Claims{UserID: 21, Username: "other", Role: domain.RoleTeacher, TeacherID: intp(9)}
)

func TestSubmitUnknownEntry(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	notifRepo := &fakeNotificationRepo{}
	uc := testWorkflow(requestRepo, notifRepo, &fakeUserRepo{})

	_, err := uc.SubmitUC(context.Background(), &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 404,
	}, adminActor)

	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(requestRepo.requests) != 0 {
		t.Error("nothing should be persisted for an unknown entry")
	}
	if len(notifRepo.created) != 0 {
		t.Error("no notifications should be sent for an unknown entry")
	}
}

func TestSubmitTeacherOwnership(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	uc := testWorkflow(requestRepo, &fakeNotificationRepo{}, &fakeUserRepo{})

	_, err := uc.SubmitUC(context.Background(), &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	}, otherActor)

	if !domain.IsAuthorization(err) {
		t.Fatalf("expected authorization error for non-owning teacher, got %v", err)
	}

	if _, err := uc.SubmitUC(context.Background(), &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	}, ownerActor); err != nil {
		t.Fatalf("owning teacher should be allowed to submit: %v", err)
	}
}

func TestSubmitNotifiesAdmins(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	notifRepo := &fakeNotificationRepo{}
	userRepo := &fakeUserRepo{admins: []domain.User{
		{ID: 10, Role: domain.RoleAdmin},
		{ID: 11, Role: domain.RoleSuperAdmin},
	}}
	uc := testWorkflow(requestRepo, notifRepo, userRepo)

	request, err := uc.SubmitUC(context.Background(), &domain.ChangeRequest{
		ChangeType:      domain.ChangeSubstitution,
		Reason:          "sick leave",
		NewTeacherID:    intp(2),
		ScheduleEntryID: 5,
	}, ownerActor)
	if err != nil {
		t.Fatalf("SubmitUC failed: %v", err)
	}

	if request.Status != domain.RequestPending {
		t.Errorf("new request status = %s, want pending", request.Status)
	}
	if request.CreatedBy != ownerActor.UserID {
		t.Errorf("CreatedBy = %d, want %d", request.CreatedBy, ownerActor.UserID)
	}
	if len(notifRepo.created) != 2 {
		t.Fatalf("expected one notification per admin, got %d", len(notifRepo.created))
	}
	for _, n := range notifRepo.created {
		if n.Type != domain.NotifChangeRequestUpdate {
			t.Errorf("notification type = %s, want change_request_update", n.Type)
		}
		if n.ChangeRequestID == nil || *n.ChangeRequestID != request.ID {
			t.Error("notification should link the submitted request")
		}
	}
}

func TestDecideRequiresAdmin(t *testing.T) {
	uc := testWorkflow(newFakeRequestRepo(), &fakeNotificationRepo{}, &fakeUserRepo{})

	_, outcome, err := uc.DecideUC(context.Background(), 1,
		domain.Decision{Status: domain.RequestApproved}, ownerActor)

	if !domain.IsAuthorization(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	if outcome != domain.OutcomeNone {
		t.Errorf("outcome = %s, want none", outcome)
	}
}

func TestDecideRejectsBadStatus(t *testing.T) {
	uc := testWorkflow(newFakeRequestRepo(), &fakeNotificationRepo{}, &fakeUserRepo{})

	_, _, err := uc.DecideUC(context.Background(), 1,
		domain.Decision{Status: domain.RequestPending}, adminActor)

	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for pending decision, got %v", err)
	}
}

func submitRequest(t *testing.T, uc domain.ChangeRequestUseCase, request *domain.ChangeRequest) *domain.ChangeRequest {
	t.Helper()
	created, err := uc.SubmitUC(context.Background(), request, ownerActor)
	if err != nil {
		t.Fatalf("SubmitUC failed: %v", err)
	}
	return created
}

func TestDecideApproveMutations(t *testing.T) {
	tests := []struct {
		name    string
		request domain.ChangeRequest
		check   func(t *testing.T, entry *domain.ScheduleEntry)
	}{
		{
			name: "Cancellation",
			request: domain.ChangeRequest{
				ChangeType:      domain.ChangeCancellation,
				Reason:          "teacher sick",
				ScheduleEntryID: 5,
			},
			check: func(t *testing.T, entry *domain.ScheduleEntry) {
				if entry.Status != domain.StatusCancelled {
					t.Errorf("status = %s, want cancelled", entry.Status)
				}
			},
		},
		{
			name: "Substitution",
			request: domain.ChangeRequest{
				ChangeType:      domain.ChangeSubstitution,
				Reason:          "teacher sick",
				NewTeacherID:    intp(2),
				ScheduleEntryID: 5,
			},
			check: func(t *testing.T, entry *domain.ScheduleEntry) {
				if entry.Status != domain.StatusSubstituted {
					t.Errorf("status = %s, want substituted", entry.Status)
				}
				if entry.SubstituteTeacherID == nil || *entry.SubstituteTeacherID != 2 {
					t.Error("substitute teacher should be recorded")
				}
				if entry.TeacherID != 1 {
					t.Error("assigned teacher must not change on substitution")
				}
			},
		},
		{
			name: "Reschedule",
			request: domain.ChangeRequest{
				ChangeType:      domain.ChangeReschedule,
				Reason:          "room maintenance",
				NewTimeSlotID:   intp(4),
				ScheduleEntryID: 5,
			},
			check: func(t *testing.T, entry *domain.ScheduleEntry) {
				if entry.Status != domain.StatusRescheduled {
					t.Errorf("status = %s, want rescheduled", entry.Status)
				}
				if entry.TimeSlotID != 4 {
					t.Errorf("time slot = %d, want 4", entry.TimeSlotID)
				}
			},
		},
		{
			name: "Classroom Change",
			request: domain.ChangeRequest{
				ChangeType:      domain.ChangeClassroomChange,
				Reason:          "projector broken",
				NewClassroomID:  intp(3),
				ScheduleEntryID: 5,
			},
			check: func(t *testing.T, entry *domain.ScheduleEntry) {
				if entry.ClassroomID != 3 {
					t.Errorf("classroom = %d, want 3", entry.ClassroomID)
				}
				if entry.OriginalClassroomID == nil || *entry.OriginalClassroomID != 7 {
					t.Error("original classroom should be snapshotted")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestRepo := newFakeRequestRepo()
			requestRepo.entries[5] = testEntry()
			uc := testWorkflow(requestRepo, &fakeNotificationRepo{}, &fakeUserRepo{})

			created := submitRequest(t, uc, &tt.request)

			decided, outcome, err := uc.DecideUC(context.Background(), created.ID,
				domain.Decision{Status: domain.RequestApproved}, adminActor)
			if err != nil {
				t.Fatalf("DecideUC failed: %v", err)
			}
			if outcome != domain.OutcomeApplied {
				t.Fatalf("outcome = %s, want applied", outcome)
			}
			if decided.Status != domain.RequestApproved {
				t.Errorf("request status = %s, want approved", decided.Status)
			}
			if decided.ProcessedBy == nil || *decided.ProcessedBy != adminActor.UserID {
				t.Error("ProcessedBy should record the deciding admin")
			}
			if decided.ProcessedAt == nil {
				t.Error("ProcessedAt should be set")
			}

			entry := requestRepo.savedEntry
			if entry == nil {
				t.Fatal("approved request should persist the mutated entry")
			}
			if entry.ChangeRequestID == nil || *entry.ChangeRequestID != created.ID {
				t.Error("entry should back-link the applied request")
			}
			if entry.Notes == nil || *entry.Notes != tt.request.Reason {
				t.Error("entry notes should carry the request reason")
			}
			tt.check(t, entry)
		})
	}
}

func TestDecideRejectLeavesEntryAlone(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	notifRepo := &fakeNotificationRepo{}
	uc := testWorkflow(requestRepo, notifRepo, &fakeUserRepo{
		students: []domain.User{{ID: 30, Role: domain.RoleStudent}},
	})

	created := submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})

	comment := "find a substitute instead"
	decided, outcome, err := uc.DecideUC(context.Background(), created.ID,
		domain.Decision{Status: domain.RequestRejected, AdminComment: &comment}, adminActor)
	if err != nil {
		t.Fatalf("DecideUC failed: %v", err)
	}

	if outcome != domain.OutcomeNone {
		t.Errorf("outcome = %s, want none", outcome)
	}
	if decided.AdminComment == nil || *decided.AdminComment != comment {
		t.Error("admin comment should be recorded")
	}
	if requestRepo.savedEntry != nil {
		t.Error("rejection must never touch the entry")
	}
	if requestRepo.entries[5].Status != domain.StatusScheduled {
		t.Error("stored entry should stay scheduled after rejection")
	}

	// Creator hears back; students do not.
	if len(notifRepo.created) != 1 {
		t.Fatalf("expected only the creator notification, got %d", len(notifRepo.created))
	}
	if decision := notifRepo.created[0]; decision.UserID != ownerActor.UserID {
		t.Errorf("notification recipient = %d, want creator %d", decision.UserID, ownerActor.UserID)
	}
}

func TestDecideTwiceFails(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	uc := testWorkflow(requestRepo, &fakeNotificationRepo{}, &fakeUserRepo{})

	created := submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})

	if _, _, err := uc.DecideUC(context.Background(), created.ID,
		domain.Decision{Status: domain.RequestRejected}, adminActor); err != nil {
		t.Fatalf("first decision failed: %v", err)
	}

	_, _, err := uc.DecideUC(context.Background(), created.ID,
		domain.Decision{Status: domain.RequestApproved}, adminActor)
	if !domain.IsValidation(err) {
		t.Fatalf("second decision should hit the terminal-state guard, got %v", err)
	}
}

func TestDecideApproveMissingEntrySkips(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	notifRepo := &fakeNotificationRepo{}
	uc := testWorkflow(requestRepo, notifRepo, &fakeUserRepo{
		students: []domain.User{{ID: 30, Role: domain.RoleStudent}},
	})

	created := submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})

	// Entry deleted between submission and decision.
	delete(requestRepo.entries, 5)

	decided, outcome, err := uc.DecideUC(context.Background(), created.ID,
		domain.Decision{Status: domain.RequestApproved}, adminActor)
	if err != nil {
		t.Fatalf("DecideUC failed: %v", err)
	}

	if outcome != domain.OutcomeSkipped {
		t.Errorf("outcome = %s, want skipped", outcome)
	}
	if decided.Status != domain.RequestApproved {
		t.Error("decision should persist even when the entry is gone")
	}
	if requestRepo.savedRequest == nil || requestRepo.savedRequest.Status != domain.RequestApproved {
		t.Error("approved request should be saved")
	}
	if requestRepo.savedEntry != nil {
		t.Error("no entry should be saved on a skipped approval")
	}
	if len(notifRepo.created) != 1 {
		t.Errorf("only the creator should be notified on a skip, got %d notifications", len(notifRepo.created))
	}
}

func TestDecideApproveNotifiesStudents(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	notifRepo := &fakeNotificationRepo{}
	uc := testWorkflow(requestRepo, notifRepo, &fakeUserRepo{
		students: []domain.User{
			{ID: 30, Role: domain.RoleStudent},
			{ID: 31, Role: domain.RoleStudent},
		},
	})

	created := submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})

	if _, _, err := uc.DecideUC(context.Background(), created.ID,
		domain.Decision{Status: domain.RequestApproved}, adminActor); err != nil {
		t.Fatalf("DecideUC failed: %v", err)
	}

	// One to the creator plus one per student of the group.
	if len(notifRepo.created) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(notifRepo.created))
	}

	byUser := map[int]domain.Notification{}
	for _, n := range notifRepo.created {
		byUser[n.UserID] = n
	}
	if byUser[ownerActor.UserID].Type != domain.NotifChangeRequestUpdate {
		t.Error("creator should get a change_request_update notification")
	}
	for _, studentID := range []int{30, 31} {
		n, ok := byUser[studentID]
		if !ok {
			t.Fatalf("student %d was not notified", studentID)
		}
		if n.Type != domain.NotifScheduleChange {
			t.Errorf("student notification type = %s, want schedule_change", n.Type)
		}
		if n.ScheduleEntryID == nil || *n.ScheduleEntryID != 5 {
			t.Error("student notification should link the changed entry")
		}
	}
}

func TestGetRequestsTeacherScope(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	uc := testWorkflow(requestRepo, &fakeNotificationRepo{}, &fakeUserRepo{})

	submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})
	requestRepo.requests[99] = &domain.ChangeRequest{
		ID: 99, ChangeType: domain.ChangeCancellation, Status: domain.RequestPending, CreatedBy: 77,
	}

	requests, err := uc.GetRequestsUC(context.Background(), domain.ChangeRequestFilter{}, ownerActor)
	if err != nil {
		t.Fatalf("GetRequestsUC failed: %v", err)
	}
	for _, r := range *requests {
		if r.CreatedBy != ownerActor.UserID {
			t.Errorf("teacher listing leaked request %d created by %d", r.ID, r.CreatedBy)
		}
	}

	all, err := uc.GetRequestsUC(context.Background(), domain.ChangeRequestFilter{}, adminActor)
	if err != nil {
		t.Fatalf("GetRequestsUC failed: %v", err)
	}
	if len(*all) != 2 {
		t.Errorf("admin listing = %d requests, want 2", len(*all))
	}
}

func TestGetRequestByIDTeacherOwnership(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	requestRepo.entries[5] = testEntry()
	uc := testWorkflow(requestRepo, &fakeNotificationRepo{}, &fakeUserRepo{})

	created := submitRequest(t, uc, &domain.ChangeRequest{
		ChangeType:      domain.ChangeCancellation,
		Reason:          "sick",
		ScheduleEntryID: 5,
	})

	if _, err := uc.GetRequestByIDUC(context.Background(), created.ID, ownerActor); err != nil {
		t.Errorf("creator should read their own request: %v", err)
	}
	if _, err := uc.GetRequestByIDUC(context.Background(), created.ID, otherActor); !domain.IsAuthorization(err) {
		t.Errorf("expected authorization error for another teacher, got %v", err)
	}
	if _, err := uc.GetRequestByIDUC(context.Background(), created.ID, adminActor); err != nil {
		t.Errorf("admins read any request: %v", err)
	}
}

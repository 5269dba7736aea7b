package usecase

import (
	"context"
	"time"
	"timetable/domain"
)

type scheduleUC struct {
	scheduleRepo domain.ScheduleRepo
	TimeOut      time.Duration
}

func NewScheduleUseCase(repo domain.ScheduleRepo, timeOut time.Duration) domain.ScheduleUseCase {
	return &scheduleUC{
		scheduleRepo: repo,
		TimeOut:      timeOut,
	}
}

func (sUC *scheduleUC) CreateEntryUC(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntryDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	// New entries always start out scheduled with no substitution state.
	entry.Status = domain.StatusScheduled
	entry.SubstituteTeacherID = nil
	entry.OriginalClassroomID = nil
	entry.ChangeRequestID = nil

	if err := sUC.scheduleRepo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return sUC.scheduleRepo.GetEntryByID(ctx, entry.ID)
}

// GetEntriesUC applies the role-scoped default view before the caller's
// filters: students see their own group, teachers their own (or
// substituted) classes.
func (sUC *scheduleUC) GetEntriesUC(ctx context.Context, filter domain.ScheduleFilter, actor *domain.Claims) (*[]domain.ScheduleEntryDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if actor != nil {
		switch {
		case actor.Role == domain.RoleStudent && actor.GroupID != nil:
			filter.GroupID = actor.GroupID
		case actor.Role.Teaches() && actor.TeacherID != nil:
			filter.TeacherID = actor.TeacherID
		}
	}

	return sUC.scheduleRepo.GetEntries(ctx, filter)
}

func (sUC *scheduleUC) GetEntryByIDUC(ctx context.Context, id int) (*domain.ScheduleEntryDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.scheduleRepo.GetEntryByID(ctx, id)
}

func (sUC *scheduleUC) UpdateEntryUC(ctx context.Context, id int, update *domain.ScheduleEntryUpdate) (*domain.ScheduleEntryDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.scheduleRepo.UpdateEntry(ctx, id, update)
}

func (sUC *scheduleUC) DeleteEntryUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.scheduleRepo.DeleteEntry(ctx, id)
}

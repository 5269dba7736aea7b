package usecase

import (
	"context"
	"fmt"
	"time"
	"timetable/domain"
)

type changeRequestUC struct {
	requestRepo domain.ChangeRequestRepo
	notifRepo   domain.NotificationRepo
	userRepo    domain.UserRepo
	TimeOut     time.Duration
}

func NewChangeRequestUseCase(requestRepo domain.ChangeRequestRepo, notifRepo domain.NotificationRepo, userRepo domain.UserRepo, timeOut time.Duration) domain.ChangeRequestUseCase {
	return &changeRequestUC{
		requestRepo: requestRepo,
		notifRepo:   notifRepo,
		userRepo:    userRepo,
		TimeOut:     timeOut,
	}
}

// ApplyChange mutates the target entry in place according to the change
// type. Notes are overwritten, not appended, and the entry keeps a
// back-link to the request that last modified it.
func ApplyChange(entry *domain.ScheduleEntry, request *domain.ChangeRequest) {
	switch request.ChangeType {
	case domain.ChangeCancellation:
		entry.Status = domain.StatusCancelled
	case domain.ChangeSubstitution:
		entry.Status = domain.StatusSubstituted
		entry.SubstituteTeacherID = request.NewTeacherID
	case domain.ChangeReschedule:
		entry.Status = domain.StatusRescheduled
		if request.NewTimeSlotID != nil {
			entry.TimeSlotID = *request.NewTimeSlotID
		}
		if request.NewDate != nil {
			entry.SpecificDate = request.NewDate
		}
	case domain.ChangeClassroomChange:
		// Snapshot the room before overwriting it.
		original := entry.ClassroomID
		entry.OriginalClassroomID = &original
		if request.NewClassroomID != nil {
			entry.ClassroomID = *request.NewClassroomID
		}
	}

	requestID := request.ID
	reason := request.Reason
	entry.ChangeRequestID = &requestID
	entry.Notes = &reason
}

// submissionNotifications plans one notification per admin-tier account
// for a freshly submitted request.
func submissionNotifications(request *domain.ChangeRequest, admins []domain.User) []domain.Notification {
	var out []domain.Notification
	for _, admin := range admins {
		out = append(out, domain.Notification{
			UserID:          admin.ID,
			Title:           "New Change Request",
			Message:         fmt.Sprintf("A new change request has been submitted: %s", request.ChangeType),
			Type:            domain.NotifChangeRequestUpdate,
			ChangeRequestID: &request.ID,
		})
	}
	return out
}

// decisionNotifications plans the fan-out for a decided request: the
// creator always hears back; on an applied approval every student of
// the entry's group is told as well.
func decisionNotifications(request *domain.ChangeRequest, entry *domain.ScheduleEntry, students []domain.User) []domain.Notification {
	out := []domain.Notification{{
		UserID:          request.CreatedBy,
		Title:           fmt.Sprintf("Change Request %s", capitalize(string(request.Status))),
		Message:         fmt.Sprintf("Your change request has been %s", request.Status),
		Type:            domain.NotifChangeRequestUpdate,
		ChangeRequestID: &request.ID,
	}}

	if request.Status == domain.RequestApproved && entry != nil {
		for _, student := range students {
			out = append(out, domain.Notification{
				UserID:          student.ID,
				Title:           "Schedule Change",
				Message:         fmt.Sprintf("Your class has been changed: %s", request.ChangeType),
				Type:            domain.NotifScheduleChange,
				ScheduleEntryID: &entry.ID,
			})
		}
	}

	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func (cUC *changeRequestUC) SubmitUC(ctx context.Context, request *domain.ChangeRequest, actor *domain.Claims) (*domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	entry, err := cUC.requestRepo.FindEntry(ctx, request.ScheduleEntryID)
	if err != nil {
		return nil, err
	}

	if actor.Role.Teaches() {
		if actor.TeacherID == nil || *actor.TeacherID != entry.TeacherID {
			return nil, &domain.AuthorizationError{Reason: "not authorized to request changes for this class"}
		}
	}

	request.Status = domain.RequestPending
	request.CreatedBy = actor.UserID

	if err := cUC.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	admins, err := cUC.userRepo.FindAdminTier(ctx)
	if err != nil {
		return nil, err
	}

	if err := cUC.notifRepo.CreateNotifications(ctx, submissionNotifications(request, *admins)); err != nil {
		return nil, err
	}

	return request, nil
}

func (cUC *changeRequestUC) GetRequestsUC(ctx context.Context, filter domain.ChangeRequestFilter, actor *domain.Claims) (*[]domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	// Teachers only ever see their own requests.
	if actor.Role.Teaches() {
		createdBy := actor.UserID
		filter.CreatedBy = &createdBy
	}

	return cUC.requestRepo.GetRequests(ctx, filter)
}

func (cUC *changeRequestUC) GetRequestByIDUC(ctx context.Context, id int, actor *domain.Claims) (*domain.ChangeRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	request, err := cUC.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role.Teaches() && request.CreatedBy != actor.UserID {
		return nil, &domain.AuthorizationError{Reason: "not authorized to view this change request"}
	}

	return request, nil
}

func (cUC *changeRequestUC) DecideUC(ctx context.Context, id int, decision domain.Decision, actor *domain.Claims) (*domain.ChangeRequest, domain.ApplyOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, cUC.TimeOut)
	defer cancel()

	if !actor.Role.AdminTier() {
		return nil, domain.OutcomeNone, &domain.AuthorizationError{Reason: "only admins decide change requests"}
	}

	if decision.Status != domain.RequestApproved && decision.Status != domain.RequestRejected {
		return nil, domain.OutcomeNone, &domain.ValidationError{Field: "status", Reason: "decision must be approved or rejected"}
	}

	request, err := cUC.requestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, domain.OutcomeNone, err
	}

	// Terminal-state guard: a decided request stays decided.
	if request.Status.Terminal() {
		return nil, domain.OutcomeNone, &domain.ValidationError{Field: "status", Reason: "change request already processed"}
	}

	now := time.Now()
	request.Status = decision.Status
	if decision.AdminComment != nil {
		request.AdminComment = decision.AdminComment
	}
	request.ProcessedBy = &actor.UserID
	request.ProcessedAt = &now

	outcome := domain.OutcomeNone
	var mutated *domain.ScheduleEntry

	if decision.Status == domain.RequestApproved {
		entry, err := cUC.requestRepo.FindEntry(ctx, request.ScheduleEntryID)
		switch {
		case domain.IsNotFound(err):
			// The entry vanished between submission and decision. The
			// decision still persists; the caller sees the skip.
			outcome = domain.OutcomeSkipped
		case err != nil:
			return nil, domain.OutcomeNone, err
		default:
			ApplyChange(entry, request)
			mutated = entry
			outcome = domain.OutcomeApplied
		}
	}

	if err := cUC.requestRepo.SaveDecision(ctx, request, mutated); err != nil {
		return nil, domain.OutcomeNone, err
	}

	var students []domain.User
	if outcome == domain.OutcomeApplied {
		groupStudents, err := cUC.userRepo.FindStudentsByGroup(ctx, mutated.GroupID)
		if err != nil {
			return nil, domain.OutcomeNone, err
		}
		students = *groupStudents
	}

	if err := cUC.notifRepo.CreateNotifications(ctx, decisionNotifications(request, mutated, students)); err != nil {
		return nil, domain.OutcomeNone, err
	}

	return request, outcome, nil
}

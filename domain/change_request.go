package domain

import (
	"context"
	"time"
)

type ChangeType string

const (
	ChangeCancellation    ChangeType = "cancellation"
	ChangeSubstitution    ChangeType = "substitution"
	ChangeReschedule      ChangeType = "reschedule"
	ChangeClassroomChange ChangeType = "classroom_change"
)

func ParseChangeType(s string) (ChangeType, error) {
	switch ChangeType(s) {
	case ChangeCancellation, ChangeSubstitution, ChangeReschedule, ChangeClassroomChange:
		return ChangeType(s), nil
	}
	return "", &ValidationError{Field: "change_type", Reason: "unknown change type " + s}
}

type ChangeRequestStatus string

const (
	RequestPending  ChangeRequestStatus = "pending"
	RequestApproved ChangeRequestStatus = "approved"
	RequestRejected ChangeRequestStatus = "rejected"
)

// Terminal reports whether no further transition is allowed.
func (s ChangeRequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// ChangeRequest is a proposed modification to one schedule entry. It is
// created pending and decided exactly once.
type ChangeRequest struct {
	ID              int                 `json:"id"`
	ChangeType      ChangeType          `json:"change_type" valid:"required~Change type is required"`
	Status          ChangeRequestStatus `json:"status"`
	Reason          string              `json:"reason" valid:"required~Reason is required"`
	RequestedDate   time.Time           `json:"requested_date" valid:"required~Requested date is required"`
	NewTimeSlotID   *int                `json:"new_time_slot_id,omitempty"`
	NewDate         *time.Time          `json:"new_date,omitempty"`
	NewClassroomID  *int                `json:"new_classroom_id,omitempty"`
	NewTeacherID    *int                `json:"new_teacher_id,omitempty"`
	AdminComment    *string             `json:"admin_comment,omitempty"`
	ScheduleEntryID int                 `json:"schedule_entry_id" valid:"required~Schedule entry is required"`
	CreatedBy       int                 `json:"created_by"`
	ProcessedBy     *int                `json:"processed_by,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	ProcessedAt     *time.Time          `json:"processed_at,omitempty"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ApplyOutcome tells the caller what an approval did to the target entry.
type ApplyOutcome string

const (
	// OutcomeApplied means the target entry was mutated.
	OutcomeApplied ApplyOutcome = "applied"
	// OutcomeSkipped means the target entry vanished between submission
	// and decision; the decision persists but nothing was mutated.
	OutcomeSkipped ApplyOutcome = "skipped"
	// OutcomeNone means the decision was a rejection; entries are never
	// touched on rejection.
	OutcomeNone ApplyOutcome = "none"
)

// Decision is an admin's verdict on a pending request.
type Decision struct {
	Status       ChangeRequestStatus `json:"status" valid:"required~Status is required"`
	AdminComment *string             `json:"admin_comment"`
}

type ChangeRequestFilter struct {
	Status    *ChangeRequestStatus
	CreatedBy *int
}

type ChangeRequestRepo interface {
	CreateRequest(ctx context.Context, request *ChangeRequest) error
	GetRequests(ctx context.Context, filter ChangeRequestFilter) (*[]ChangeRequest, error)
	GetRequestByID(ctx context.Context, id int) (*ChangeRequest, error)
	// FindEntry loads the bare schedule entry a request targets.
	FindEntry(ctx context.Context, entryID int) (*ScheduleEntry, error)
	// SaveDecision persists the decided request and, when entry is not
	// nil, the mutated target entry in the same transaction.
	SaveDecision(ctx context.Context, request *ChangeRequest, entry *ScheduleEntry) error
}

type ChangeRequestUseCase interface {
	SubmitUC(ctx context.Context, request *ChangeRequest, actor *Claims) (*ChangeRequest, error)
	GetRequestsUC(ctx context.Context, filter ChangeRequestFilter, actor *Claims) (*[]ChangeRequest, error)
	GetRequestByIDUC(ctx context.Context, id int, actor *Claims) (*ChangeRequest, error)
	DecideUC(ctx context.Context, id int, decision Decision, actor *Claims) (*ChangeRequest, ApplyOutcome, error)
}

package domain

import (
	"context"
	"time"
)

type NotificationType string

const (
	NotifScheduleChange      NotificationType = "schedule_change"
	NotifSubstitution        NotificationType = "substitution"
	NotifCancellation        NotificationType = "cancellation"
	NotifReschedule          NotificationType = "reschedule"
	NotifClassroomChange     NotificationType = "classroom_change"
	NotifChangeRequestUpdate NotificationType = "change_request_update"
)

// Notification is a durable fact record owned by its recipient. Created
// only by workflow transitions, mutated only by the owner marking it
// read, deleted only by the owner. Delivery is pull-based.
type Notification struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Message         string           `json:"message"`
	Type            NotificationType `json:"type"`
	IsRead          bool             `json:"is_read"`
	UserID          int              `json:"user_id"`
	ScheduleEntryID *int             `json:"schedule_entry_id,omitempty"`
	ChangeRequestID *int             `json:"change_request_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	ReadAt          *time.Time       `json:"read_at,omitempty"`
}

type NotificationRepo interface {
	// CreateNotifications persists a batch of workflow-produced records.
	CreateNotifications(ctx context.Context, notifications []Notification) error
	GetByUser(ctx context.Context, userID int, unreadOnly bool) (*[]Notification, error)
	MarkRead(ctx context.Context, id, userID int) (*Notification, error)
	MarkAllRead(ctx context.Context, userID int) error
	Delete(ctx context.Context, id, userID int) error
}

type NotificationUseCase interface {
	GetByUserUC(ctx context.Context, userID int, unreadOnly bool) (*[]Notification, error)
	MarkReadUC(ctx context.Context, id, userID int) (*Notification, error)
	MarkAllReadUC(ctx context.Context, userID int) error
	DeleteUC(ctx context.Context, id, userID int) error
}

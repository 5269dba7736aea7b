package usecase

import (
	"context"
	"time"
	"timetable/domain"
)

type notificationUC struct {
	notifRepo domain.NotificationRepo
	TimeOut   time.Duration
}

func NewNotificationUseCase(repo domain.NotificationRepo, timeOut time.Duration) domain.NotificationUseCase {
	return &notificationUC{
		notifRepo: repo,
		TimeOut:   timeOut,
	}
}

func (nUC *notificationUC) GetByUserUC(ctx context.Context, userID int, unreadOnly bool) (*[]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.GetByUser(ctx, userID, unreadOnly)
}

func (nUC *notificationUC) MarkReadUC(ctx context.Context, id, userID int) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.MarkRead(ctx, id, userID)
}

func (nUC *notificationUC) MarkAllReadUC(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.MarkAllRead(ctx, userID)
}

func (nUC *notificationUC) DeleteUC(ctx context.Context, id, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, nUC.TimeOut)
	defer cancel()

	return nUC.notifRepo.Delete(ctx, id, userID)
}

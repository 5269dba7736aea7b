package repository

import (
	"context"
	"errors"
	"fmt"
	"time"
	"timetable/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(database *pgxpool.Pool) domain.NotificationRepo {
	return &notificationRepository{
		db: database,
	}
}

const notificationColumns = `
	id, title, message, type, is_read, user_id,
	schedule_entry_id, change_request_id, created_at, read_at
`

// CreateNotifications writes a workflow fan-out batch in one round trip.
func (nr *notificationRepository) CreateNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	insertQuery := `
		INSERT INTO notifications
			(title, message, type, user_id, schedule_entry_id, change_request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	now := time.Now()

	batch := &pgx.Batch{}
	for _, n := range notifications {
		batch.Queue(insertQuery, n.Title, n.Message, n.Type, n.UserID,
			n.ScheduleEntryID, n.ChangeRequestID, now)
	}

	results := nr.db.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("could not insert notification: %w", err)
		}
	}

	return nil
}

func (nr *notificationRepository) GetByUser(ctx context.Context, userID int, unreadOnly bool) (*[]domain.Notification, error) {
	query := "SELECT " + notificationColumns + " FROM notifications WHERE user_id = $1"
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC;"

	rows, err := nr.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead,
			&n.UserID, &n.ScheduleEntryID, &n.ChangeRequestID, &n.CreatedAt, &n.ReadAt)
		if err != nil {
			return nil, fmt.Errorf("could not scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &notifications, nil
}

func (nr *notificationRepository) MarkRead(ctx context.Context, id, userID int) (*domain.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + notificationColumns + `;`

	var n domain.Notification
	err := nr.db.QueryRow(ctx, query, time.Now(), id, userID).Scan(
		&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead,
		&n.UserID, &n.ScheduleEntryID, &n.ChangeRequestID, &n.CreatedAt, &n.ReadAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "notification", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not mark notification read: %w", err)
	}

	return &n, nil
}

func (nr *notificationRepository) MarkAllRead(ctx context.Context, userID int) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = $1
		WHERE user_id = $2 AND is_read = FALSE;
	`
	if _, err := nr.db.Exec(ctx, query, time.Now(), userID); err != nil {
		return fmt.Errorf("could not mark notifications read: %w", err)
	}
	return nil
}

func (nr *notificationRepository) Delete(ctx context.Context, id, userID int) error {
	tag, err := nr.db.Exec(ctx,
		`DELETE FROM notifications WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("could not delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "notification", ID: id}
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"timetable/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type changeRequestRepository struct {
	db *pgxpool.Pool
}

func NewChangeRequestRepository(database *pgxpool.Pool) domain.ChangeRequestRepo {
	return &changeRequestRepository{
		db: database,
	}
}

const requestColumns = `
	id, change_type, status, reason, requested_date,
	new_time_slot_id, new_date, new_classroom_id, new_teacher_id,
	admin_comment, schedule_entry_id, created_by, processed_by,
	created_at, processed_at, updated_at
`

func scanRequest(row pgx.Row) (*domain.ChangeRequest, error) {
	var r domain.ChangeRequest
	err := row.Scan(
		&r.ID, &r.ChangeType, &r.Status, &r.Reason, &r.RequestedDate,
		&r.NewTimeSlotID, &r.NewDate, &r.NewClassroomID, &r.NewTeacherID,
		&r.AdminComment, &r.ScheduleEntryID, &r.CreatedBy, &r.ProcessedBy,
		&r.CreatedAt, &r.ProcessedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (cr *changeRequestRepository) CreateRequest(ctx context.Context, request *domain.ChangeRequest) error {
	insertQuery := `
		INSERT INTO change_requests
			(change_type, status, reason, requested_date, new_time_slot_id,
			new_date, new_classroom_id, new_teacher_id, schedule_entry_id,
			created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := cr.db.QueryRow(ctx, insertQuery,
		request.ChangeType, request.Status, request.Reason, request.RequestedDate,
		request.NewTimeSlotID, request.NewDate, request.NewClassroomID,
		request.NewTeacherID, request.ScheduleEntryID, request.CreatedBy, now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert change request: %w", err)
	}

	request.ID = id
	request.CreatedAt = now
	request.UpdatedAt = now

	return nil
}

func (cr *changeRequestRepository) GetRequests(ctx context.Context, filter domain.ChangeRequestFilter) (*[]domain.ChangeRequest, error) {
	query := "SELECT " + requestColumns + " FROM change_requests"

	var conds []string
	var args []interface{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		conds = append(conds, fmt.Sprintf("created_by = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC;"

	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get change requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.ChangeRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan change request: %w", err)
		}
		requests = append(requests, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &requests, nil
}

func (cr *changeRequestRepository) GetRequestByID(ctx context.Context, id int) (*domain.ChangeRequest, error) {
	query := "SELECT " + requestColumns + " FROM change_requests WHERE id = $1;"

	r, err := scanRequest(cr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "change request", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get change request: %w", err)
	}

	return r, nil
}

func (cr *changeRequestRepository) FindEntry(ctx context.Context, entryID int) (*domain.ScheduleEntry, error) {
	query := `
		SELECT id, day_of_week, specific_date, status, notes, group_id,
			subject_id, teacher_id, classroom_id, time_slot_id,
			substitute_teacher_id, original_classroom_id, change_request_id,
			created_at, updated_at
		FROM schedule_entries
		WHERE id = $1;
	`

	var e domain.ScheduleEntry
	err := cr.db.QueryRow(ctx, query, entryID).Scan(
		&e.ID, &e.DayOfWeek, &e.SpecificDate, &e.Status, &e.Notes, &e.GroupID,
		&e.SubjectID, &e.TeacherID, &e.ClassroomID, &e.TimeSlotID,
		&e.SubstituteTeacherID, &e.OriginalClassroomID, &e.ChangeRequestID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "schedule entry", ID: entryID}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get schedule entry: %w", err)
	}

	return &e, nil
}

// SaveDecision persists the decided request and, when the approval
// mutated the target entry, the entry itself in the same transaction.
func (cr *changeRequestRepository) SaveDecision(ctx context.Context, request *domain.ChangeRequest, entry *domain.ScheduleEntry) error {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	requestQuery := `
		UPDATE change_requests
		SET status = $1, admin_comment = $2, processed_by = $3,
			processed_at = $4, updated_at = $5
		WHERE id = $6;
	`
	_, err = tx.Exec(ctx, requestQuery,
		request.Status, request.AdminComment, request.ProcessedBy,
		request.ProcessedAt, now, request.ID)
	if err != nil {
		return fmt.Errorf("could not update change request: %w", err)
	}

	if entry != nil {
		entryQuery := `
			UPDATE schedule_entries
			SET day_of_week = $1, specific_date = $2, status = $3, notes = $4,
				classroom_id = $5, time_slot_id = $6, substitute_teacher_id = $7,
				original_classroom_id = $8, change_request_id = $9, updated_at = $10
			WHERE id = $11;
		`
		_, err = tx.Exec(ctx, entryQuery,
			entry.DayOfWeek, entry.SpecificDate, entry.Status, entry.Notes,
			entry.ClassroomID, entry.TimeSlotID, entry.SubstituteTeacherID,
			entry.OriginalClassroomID, entry.ChangeRequestID, now, entry.ID)
		if err != nil {
			return fmt.Errorf("could not apply change to schedule entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit decision: %w", err)
	}

	request.UpdatedAt = now
	return nil
}

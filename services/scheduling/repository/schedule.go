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

type scheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(database *pgxpool.Pool) domain.ScheduleRepo {
	return &scheduleRepository{
		db: database,
	}
}

const detailsQuery = `
	SELECT e.id, e.day_of_week, e.specific_date, e.status, e.notes,
		e.group_id, e.subject_id, e.teacher_id, e.classroom_id, e.time_slot_id,
		e.substitute_teacher_id, e.original_classroom_id, e.change_request_id,
		e.created_at, e.updated_at,
		g.name, subj.name, t.full_name, c.name,
		ts.name, ts.start_time::text, ts.end_time::text,
		st.full_name
	FROM schedule_entries e
	JOIN groups g ON e.group_id = g.id
	JOIN subjects subj ON e.subject_id = subj.id
	JOIN teachers t ON e.teacher_id = t.id
	JOIN classrooms c ON e.classroom_id = c.id
	JOIN time_slots ts ON e.time_slot_id = ts.id
	LEFT JOIN teachers st ON e.substitute_teacher_id = st.id
`

func scanDetails(row pgx.Row) (*domain.ScheduleEntryDetails, error) {
	var d domain.ScheduleEntryDetails
	err := row.Scan(
		&d.ID, &d.DayOfWeek, &d.SpecificDate, &d.Status, &d.Notes,
		&d.GroupID, &d.SubjectID, &d.TeacherID, &d.ClassroomID, &d.TimeSlotID,
		&d.SubstituteTeacherID, &d.OriginalClassroomID, &d.ChangeRequestID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.GroupName, &d.SubjectName, &d.TeacherName, &d.ClassroomName,
		&d.TimeSlotName, &d.StartTime, &d.EndTime,
		&d.SubstituteTeacherName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// findConflict returns the first existing entry occupying the same day
// and slot with a shared teacher, group or classroom. Entries with a
// specific date are deliberately not distinguished from weekly ones.
func findConflict(ctx context.Context, tx pgx.Tx, day domain.DayOfWeek, timeSlotID, teacherID, groupID, classroomID, excludeID int) error {
	query := `
		SELECT id FROM schedule_entries
		WHERE day_of_week = $1 AND time_slot_id = $2
			AND (teacher_id = $3 OR group_id = $4 OR classroom_id = $5)
			AND id <> $6
		LIMIT 1;
	`

	var conflictID int
	err := tx.QueryRow(ctx, query, day, timeSlotID, teacherID, groupID, classroomID, excludeID).Scan(&conflictID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not check for schedule conflict: %w", err)
	}

	return &domain.ConflictError{
		DayOfWeek:          day,
		TimeSlotID:         timeSlotID,
		ConflictingEntryID: conflictID,
	}
}

// lockSlot serializes concurrent check-then-insert on the same day and
// slot for the lifetime of the transaction.
func lockSlot(ctx context.Context, tx pgx.Tx, day domain.DayOfWeek, timeSlotID int) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2);`, day.Ordinal(), timeSlotID)
	if err != nil {
		return fmt.Errorf("could not lock schedule slot: %w", err)
	}
	return nil
}

func (sr *scheduleRepository) CreateEntry(ctx context.Context, entry *domain.ScheduleEntry) error {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockSlot(ctx, tx, entry.DayOfWeek, entry.TimeSlotID); err != nil {
		return err
	}

	if err := findConflict(ctx, tx, entry.DayOfWeek, entry.TimeSlotID,
		entry.TeacherID, entry.GroupID, entry.ClassroomID, 0); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO schedule_entries
			(day_of_week, specific_date, status, notes, group_id, subject_id,
			teacher_id, classroom_id, time_slot_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err = tx.QueryRow(ctx, insertQuery,
		entry.DayOfWeek, entry.SpecificDate, entry.Status, entry.Notes,
		entry.GroupID, entry.SubjectID, entry.TeacherID, entry.ClassroomID,
		entry.TimeSlotID, now,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert schedule entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit schedule entry: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = now
	entry.UpdatedAt = now

	return nil
}

func (sr *scheduleRepository) GetEntries(ctx context.Context, filter domain.ScheduleFilter) (*[]domain.ScheduleEntryDetails, error) {
	query := detailsQuery

	var conds []string
	var args []interface{}

	if filter.GroupID != nil {
		args = append(args, *filter.GroupID)
		conds = append(conds, fmt.Sprintf("e.group_id = $%d", len(args)))
	}
	if filter.TeacherID != nil {
		args = append(args, *filter.TeacherID)
		conds = append(conds, fmt.Sprintf("(e.teacher_id = $%d OR e.substitute_teacher_id = $%d)", len(args), len(args)))
	}
	if filter.ClassroomID != nil {
		args = append(args, *filter.ClassroomID)
		conds = append(conds, fmt.Sprintf("e.classroom_id = $%d", len(args)))
	}
	if filter.SpecificDate != nil {
		args = append(args, *filter.SpecificDate)
		conds = append(conds, fmt.Sprintf("e.specific_date = $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.id;"

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ScheduleEntryDetails
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan schedule entry: %w", err)
		}
		entries = append(entries, *d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &entries, nil
}

func (sr *scheduleRepository) GetEntryByID(ctx context.Context, id int) (*domain.ScheduleEntryDetails, error) {
	query := detailsQuery + " WHERE e.id = $1;"

	d, err := scanDetails(sr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "schedule entry", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get schedule entry: %w", err)
	}

	return d, nil
}

func (sr *scheduleRepository) UpdateEntry(ctx context.Context, id int, update *domain.ScheduleEntryUpdate) (*domain.ScheduleEntryDetails, error) {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	currentQuery := `
		SELECT day_of_week, time_slot_id, teacher_id, group_id, classroom_id
		FROM schedule_entries
		WHERE id = $1
		FOR UPDATE;
	`

	var day domain.DayOfWeek
	var timeSlotID, teacherID, groupID, classroomID int
	err = tx.QueryRow(ctx, currentQuery, id).Scan(&day, &timeSlotID, &teacherID, &groupID, &classroomID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "schedule entry", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("could not get schedule entry: %w", err)
	}

	if update.DayOfWeek != nil {
		day = *update.DayOfWeek
	}
	if update.TimeSlotID != nil {
		timeSlotID = *update.TimeSlotID
	}
	if update.TeacherID != nil {
		teacherID = *update.TeacherID
	}
	if update.GroupID != nil {
		groupID = *update.GroupID
	}
	if update.ClassroomID != nil {
		classroomID = *update.ClassroomID
	}

	// Moving an entry along any conflict axis re-runs the double-booking
	// check against everything but the entry itself.
	if update.TouchesConflictAxes() {
		if err := lockSlot(ctx, tx, day, timeSlotID); err != nil {
			return nil, err
		}
		if err := findConflict(ctx, tx, day, timeSlotID, teacherID, groupID, classroomID, id); err != nil {
			return nil, err
		}
	}

	var sets []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.DayOfWeek != nil {
		addSet("day_of_week", *update.DayOfWeek)
	}
	if update.SpecificDate != nil {
		addSet("specific_date", *update.SpecificDate)
	}
	if update.Status != nil {
		addSet("status", *update.Status)
	}
	if update.Notes != nil {
		addSet("notes", *update.Notes)
	}
	if update.GroupID != nil {
		addSet("group_id", *update.GroupID)
	}
	if update.SubjectID != nil {
		addSet("subject_id", *update.SubjectID)
	}
	if update.TeacherID != nil {
		addSet("teacher_id", *update.TeacherID)
	}
	if update.ClassroomID != nil {
		addSet("classroom_id", *update.ClassroomID)
	}
	if update.TimeSlotID != nil {
		addSet("time_slot_id", *update.TimeSlotID)
	}
	if update.SubstituteTeacherID != nil {
		addSet("substitute_teacher_id", *update.SubstituteTeacherID)
	}

	if len(sets) > 0 {
		addSet("updated_at", time.Now())
		args = append(args, id)
		updateQuery := fmt.Sprintf("UPDATE schedule_entries SET %s WHERE id = $%d;",
			strings.Join(sets, ", "), len(args))

		if _, err := tx.Exec(ctx, updateQuery, args...); err != nil {
			return nil, fmt.Errorf("could not update schedule entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("could not commit schedule entry update: %w", err)
	}

	return sr.GetEntryByID(ctx, id)
}

func (sr *scheduleRepository) DeleteEntry(ctx context.Context, id int) error {
	tag, err := sr.db.Exec(ctx, `DELETE FROM schedule_entries WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "schedule entry", ID: id}
	}
	return nil
}

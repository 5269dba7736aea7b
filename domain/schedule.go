package domain

import (
	"context"
	"time"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var dayOrdinals = map[DayOfWeek]int{
	Monday: 1, Tuesday: 2, Wednesday: 3, Thursday: 4, Friday: 5, Saturday: 6, Sunday: 7,
}

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	if _, ok := dayOrdinals[DayOfWeek(s)]; !ok {
		return "", &ValidationError{Field: "day_of_week", Reason: "unknown day " + s}
	}
	return DayOfWeek(s), nil
}

// Ordinal returns 1 for monday through 7 for sunday, 0 for an unknown day.
// Used as an advisory lock key component by the schedule repository.
func (d DayOfWeek) Ordinal() int {
	return dayOrdinals[d]
}

type ScheduleStatus string

const (
	StatusScheduled   ScheduleStatus = "scheduled"
	StatusCancelled   ScheduleStatus = "cancelled"
	StatusRescheduled ScheduleStatus = "rescheduled"
	StatusSubstituted ScheduleStatus = "substituted"
)

// ScheduleEntry is one timetabled class occurrence, recurring by day of
// week or pinned to a specific date.
type ScheduleEntry struct {
	ID                  int            `json:"id"`
	DayOfWeek           DayOfWeek      `json:"day_of_week" valid:"required~Day of week is required"`
	SpecificDate        *time.Time     `json:"specific_date,omitempty"`
	Status              ScheduleStatus `json:"status"`
	Notes               *string        `json:"notes,omitempty"`
	GroupID             int            `json:"group_id" valid:"required~Group is required"`
	SubjectID           int            `json:"subject_id" valid:"required~Subject is required"`
	TeacherID           int            `json:"teacher_id" valid:"required~Teacher is required"`
	ClassroomID         int            `json:"classroom_id" valid:"required~Classroom is required"`
	TimeSlotID          int            `json:"time_slot_id" valid:"required~Time slot is required"`
	SubstituteTeacherID *int           `json:"substitute_teacher_id,omitempty"`
	OriginalClassroomID *int           `json:"original_classroom_id,omitempty"`
	ChangeRequestID     *int           `json:"change_request_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// ConflictsWith reports whether two entries double-book: same day and
// time slot, sharing at least one of teacher, group or classroom.
// Dated one-off entries are not distinguished from weekly recurrences.
func (e *ScheduleEntry) ConflictsWith(other *ScheduleEntry) bool {
	if e.DayOfWeek != other.DayOfWeek || e.TimeSlotID != other.TimeSlotID {
		return false
	}
	return e.TeacherID == other.TeacherID ||
		e.GroupID == other.GroupID ||
		e.ClassroomID == other.ClassroomID
}

// ScheduleEntryDetails joins an entry with the display names of its
// references for the schedule views.
type ScheduleEntryDetails struct {
	ScheduleEntry
	GroupName             string  `json:"group_name"`
	SubjectName           string  `json:"subject_name"`
	TeacherName           string  `json:"teacher_name"`
	ClassroomName         string  `json:"classroom_name"`
	TimeSlotName          string  `json:"time_slot_name"`
	StartTime             string  `json:"start_time"`
	EndTime               string  `json:"end_time"`
	SubstituteTeacherName *string `json:"substitute_teacher_name,omitempty"`
}

// ScheduleFilter narrows schedule listings. A teacher id matches both
// the assigned and the substitute teacher.
type ScheduleFilter struct {
	GroupID      *int
	TeacherID    *int
	ClassroomID  *int
	SpecificDate *time.Time
}

// ScheduleEntryUpdate carries the fields an admin may change on an
// existing entry. Nil fields are left untouched.
type ScheduleEntryUpdate struct {
	DayOfWeek           *DayOfWeek      `json:"day_of_week"`
	SpecificDate        *time.Time      `json:"specific_date"`
	Status              *ScheduleStatus `json:"status"`
	Notes               *string         `json:"notes"`
	GroupID             *int            `json:"group_id"`
	SubjectID           *int            `json:"subject_id"`
	TeacherID           *int            `json:"teacher_id"`
	ClassroomID         *int            `json:"classroom_id"`
	TimeSlotID          *int            `json:"time_slot_id"`
	SubstituteTeacherID *int            `json:"substitute_teacher_id"`
}

// TouchesConflictAxes reports whether the update moves the entry along
// any axis the conflict check covers, forcing a re-check.
func (u *ScheduleEntryUpdate) TouchesConflictAxes() bool {
	return u.DayOfWeek != nil || u.TimeSlotID != nil ||
		u.TeacherID != nil || u.GroupID != nil || u.ClassroomID != nil
}

type ScheduleRepo interface {
	CreateEntry(ctx context.Context, entry *ScheduleEntry) error
	GetEntries(ctx context.Context, filter ScheduleFilter) (*[]ScheduleEntryDetails, error)
	GetEntryByID(ctx context.Context, id int) (*ScheduleEntryDetails, error)
	UpdateEntry(ctx context.Context, id int, update *ScheduleEntryUpdate) (*ScheduleEntryDetails, error)
	DeleteEntry(ctx context.Context, id int) error
}

type ScheduleUseCase interface {
	CreateEntryUC(ctx context.Context, entry *ScheduleEntry) (*ScheduleEntryDetails, error)
	GetEntriesUC(ctx context.Context, filter ScheduleFilter, actor *Claims) (*[]ScheduleEntryDetails, error)
	GetEntryByIDUC(ctx context.Context, id int) (*ScheduleEntryDetails, error)
	UpdateEntryUC(ctx context.Context, id int, update *ScheduleEntryUpdate) (*ScheduleEntryDetails, error)
	DeleteEntryUC(ctx context.Context, id int) error
}

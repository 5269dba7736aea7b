package domain

import (
	"errors"
	"fmt"
)

// NotFoundError means a referenced record does not exist. Maps to 404.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError means a candidate schedule entry would double-book a
// teacher, group or classroom. Maps to 400.
type ConflictError struct {
	DayOfWeek          DayOfWeek
	TimeSlotID         int
	ConflictingEntryID int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflict: teacher, group, or classroom already occupied on %s slot %d (entry %d)",
		e.DayOfWeek, e.TimeSlotID, e.ConflictingEntryID)
}

// AuthorizationError means the actor's role or ownership does not allow
// the operation. Maps to 403.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// ValidationError means the input itself is malformed. Maps to 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsAuthorization(err error) bool {
	var a *AuthorizationError
	return errors.As(err, &a)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateSlug is returned by the event repository when the store's
	// unique index on slug rejects a write. Under concurrent creation of the
	// same title this is an expected race, not corruption; callers retry once
	// with a fresh uniqueness check.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrDuplicateBooking is returned when the (event_id, email) unique
	// constraint rejects a booking insert.
	ErrDuplicateBooking = errors.New("booking already exists")

	ErrMissingImage   = errors.New("image is required")
	ErrPastDate       = errors.New("event date and time must be in the future")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrUserNotFound   = errors.New("user not found")
)

// MissingFieldsError reports every required field that was absent or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// FieldTooLongError reports a field that exceeds its maximum length.
type FieldTooLongError struct {
	Field string
	Max   int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s cannot exceed %d characters", e.Field, e.Max)
}

// EmptyListError reports a list field that parsed to zero elements.
type EmptyListError struct {
	Field string
}

func (e *EmptyListError) Error() string {
	return "at least one " + e.Field + " item is required"
}

// InvalidImageError reports an image payload rejected by type or size checks.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string {
	return "invalid image: " + e.Reason
}

// InvalidDateTimeError reports an unparseable date or time value.
type InvalidDateTimeError struct {
	Field string
	Value string
}

func (e *InvalidDateTimeError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

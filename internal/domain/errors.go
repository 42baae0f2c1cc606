package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input or an entity fails validation.
	// Every *ValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskStatus is returned for statuses outside the defined set.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrTitleTooLong        = fmt.Errorf("task title cannot exceed %d characters", MaxTitleLength)
	ErrEmptyContent        = errors.New("task content cannot be empty")
	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// ValidationError collects human-readable messages per input field. Fields
// keep the order in which they were first reported.
type ValidationError struct {
	fields map[string][]string
	order  []string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

// NewFieldError returns a ValidationError holding a single message.
func NewFieldError(field, message string) *ValidationError {
	e := NewValidationError()
	e.Add(field, message)
	return e
}

// Add records message against field.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

// HasErrors reports whether any message has been recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.order) > 0
}

// Fields returns a copy of the recorded messages keyed by field.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for field, msgs := range e.fields {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// FieldNames returns the fields in the order they were first reported.
func (e *ValidationError) FieldNames() []string {
	return append([]string(nil), e.order...)
}

// Summary returns the first message, followed by a count of the remaining
// ones, e.g. "The title field is required. (and 2 more errors)".
func (e *ValidationError) Summary() string {
	if !e.HasErrors() {
		return ErrValidation.Error()
	}

	first := e.fields[e.order[0]][0]
	total := 0
	for _, msgs := range e.fields {
		total += len(msgs)
	}

	switch remaining := total - 1; remaining {
	case 0:
		return first
	case 1:
		return first + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, remaining)
	}
}

func (e *ValidationError) Error() string {
	if !e.HasErrors() {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.order))
	for _, field := range e.order {
		parts = append(parts, field+": "+strings.Join(e.fields[field], "; "))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

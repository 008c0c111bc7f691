package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist or is owned by someone else.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation. Use errors.As with *ValidationError to get the field list.
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would break a uniqueness rule
// (tracking number per owner, username, email).
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned for bad credentials and for missing, invalid,
// or expired session tokens. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRateLimited is returned while a login is temporarily blocked.
// Handlers should map this to HTTP 429.
var ErrRateLimited = errors.New("rate limited")

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failing field of one input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// Add records a failure for field. The first failure per field wins.
func (e *ValidationError) Add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns e as an error, or nil when no field failed.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Messages returns the human-readable message of every field error.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = f.Message
	}
	return out
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages(), "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// ConflictError carries a client-facing message for a uniqueness failure.
// It matches ErrConflict under errors.Is.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return ErrConflict.Error() + ": " + e.Message
}

// Is makes errors.Is(err, ErrConflict) true for any *ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

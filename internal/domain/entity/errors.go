package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownField indicates a partial update named a column the record does not have
	ErrUnknownField = errors.New("unknown field")

	// ErrImmutableField indicates a partial update tried to change the identity column
	ErrImmutableField = errors.New("immutable field")
)

// ValidationError represents a validation error with detailed field information.
// Err, when set, is one of the sentinels above so callers can use errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel behind the validation failure.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

package repository

import "errors"

// Storage failure classes. Implementations wrap driver errors so these match
// with errors.Is while errors.As still reaches the driver error.
var (
	// ErrConstraintViolation indicates a unique, not-null, check or foreign key violation.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConnectionFailure indicates the handle could not reach the backing store.
	ErrConnectionFailure = errors.New("connection failure")
)

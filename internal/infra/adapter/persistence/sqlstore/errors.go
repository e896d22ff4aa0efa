package sqlstore

import (
	"fmt"

	"blogful/internal/repository"
)

// Error is a failed statement. It keeps the driver error as is: errors.As
// reaches *pgconn.PgError or *sqlite.Error, and errors.Is matches the
// repository failure classes.
type Error struct {
	Op    string
	Table string
	Kind  Kind
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the repository sentinel for the error's Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case repository.ErrConstraintViolation:
		return e.Kind == KindConstraintViolation
	case repository.ErrConnectionFailure:
		return e.Kind == KindConnectionFailure
	}
	return false
}

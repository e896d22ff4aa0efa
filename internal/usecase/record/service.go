// Package record provides the CRUD operations shared by every table-backed
// service. Each operation takes the storage handle as an argument; the
// service holds no connection state of its own.
package record

import (
	"context"

	"blogful/internal/domain/entity"
	"blogful/internal/repository"
)

// IDColumn is the identity column of every record table.
const IDColumn = "id"

// Schema binds a record type to its table.
type Schema[T any] struct {
	Table string
	// Columns in the order Scan reads them.
	Columns []string
	// Fields are the columns callers may write.
	Fields entity.FieldSet
	Scan   func(row repository.Scanner) (T, error)
	Values func(rec T) entity.Fields
}

// Service runs CRUD against one table. Storage errors are returned as the
// handle produced them.
type Service[T any] struct {
	Schema Schema[T]
}

// New returns a Service for schema.
func New[T any](schema Schema[T]) *Service[T] {
	return &Service[T]{Schema: schema}
}

// ListAll returns every row of the table. An empty table yields an empty,
// non-nil slice.
func (s *Service[T]) ListAll(ctx context.Context, h repository.Handle) ([]T, error) {
	return s.Query(ctx, h, repository.SelectQuery{})
}

// Query runs q against the table with the schema's columns and scan func.
// Table and Columns of q are filled in when empty.
func (s *Service[T]) Query(ctx context.Context, h repository.Handle, q repository.SelectQuery) ([]T, error) {
	if q.Table == "" {
		q.Table = s.Schema.Table
	}
	if len(q.Columns) == 0 && len(q.Aggregates) == 0 {
		q.Columns = s.Schema.Columns
	}
	out := make([]T, 0)
	err := h.Select(ctx, q, func(row repository.Scanner) error {
		rec, err := s.Schema.Scan(row)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the record with id, or nil when no row has it.
func (s *Service[T]) GetByID(ctx context.Context, h repository.Handle, id int64) (*T, error) {
	recs, err := s.Query(ctx, h, repository.SelectQuery{
		Where: []repository.Condition{repository.Eq(IDColumn, id)},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// Insert stores rec and returns the row as stored, with its assigned id and
// any column defaults.
func (s *Service[T]) Insert(ctx context.Context, h repository.Handle, rec T) (T, error) {
	var (
		stored T
		found  bool
	)
	err := h.InsertReturning(ctx, s.Schema.Table, s.Schema.Values(rec), s.Schema.Columns,
		func(row repository.Scanner) error {
			r, err := s.Schema.Scan(row)
			if err != nil {
				return err
			}
			stored, found = r, true
			return nil
		})
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		var zero T
		return zero, errNoRowReturned
	}
	return stored, nil
}

// Update overwrites the given columns of the record with id. Other columns
// keep their values. It returns the number of rows changed, which is zero
// when id does not exist. Unknown or immutable field names are rejected
// before any statement runs.
func (s *Service[T]) Update(ctx context.Context, h repository.Handle, id int64, fields entity.Fields) (int64, error) {
	if err := s.Schema.Fields.Validate(fields); err != nil {
		return 0, err
	}
	return h.Update(ctx, s.Schema.Table, fields, repository.Eq(IDColumn, id))
}

// DeleteByID removes the record with id and returns the number of rows
// removed, which is zero when id does not exist.
func (s *Service[T]) DeleteByID(ctx context.Context, h repository.Handle, id int64) (int64, error) {
	return h.Delete(ctx, s.Schema.Table, repository.Eq(IDColumn, id))
}

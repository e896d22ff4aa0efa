package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"blogful/internal/domain/entity"
	"blogful/internal/repository"
)

// DBTX is the part of *sql.DB and *sql.Tx the store needs.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store implements repository.Handle by building one statement per call.
// It does not own db and never closes it.
type Store struct {
	db      DBTX
	dialect Dialect
}

var _ repository.Handle = (*Store)(nil)

// New returns a Store issuing statements in dialect d against db.
func New(db DBTX, d Dialect) *Store {
	return &Store{db: db, dialect: d}
}

func (s *Store) Select(ctx context.Context, q repository.SelectQuery, scan repository.ScanFunc) error {
	query, args, err := buildSelect(s.dialect, q)
	if err != nil {
		return fmt.Errorf("Select: %w", err)
	}
	return s.query(ctx, "select", q.Table, query, args, scan)
}

func (s *Store) InsertReturning(ctx context.Context, table string, values entity.Fields, returning []string, scan repository.ScanFunc) error {
	query, args, err := buildInsert(s.dialect, table, values, returning)
	if err != nil {
		return fmt.Errorf("InsertReturning: %w", err)
	}
	return s.query(ctx, "insert", table, query, args, scan)
}

func (s *Store) Update(ctx context.Context, table string, set entity.Fields, where ...repository.Condition) (int64, error) {
	query, args, err := buildUpdate(s.dialect, table, set, where)
	if err != nil {
		return 0, fmt.Errorf("Update: %w", err)
	}
	return s.exec(ctx, "update", table, query, args)
}

func (s *Store) Delete(ctx context.Context, table string, where ...repository.Condition) (int64, error) {
	query, args, err := buildDelete(s.dialect, table, where)
	if err != nil {
		return 0, fmt.Errorf("Delete: %w", err)
	}
	return s.exec(ctx, "delete", table, query, args)
}

func (s *Store) query(ctx context.Context, op, table, query string, args []any, scan repository.ScanFunc) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return s.wrap(op, table, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return s.wrap(op, table, fmt.Errorf("Scan: %w", err))
		}
	}
	if err := rows.Err(); err != nil {
		return s.wrap(op, table, err)
	}
	return nil
}

func (s *Store) exec(ctx context.Context, op, table, query string, args []any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.wrap(op, table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, s.wrap(op, table, err)
	}
	return n, nil
}

func (s *Store) wrap(op, table string, err error) error {
	return &Error{Op: op, Table: table, Kind: s.dialect.Classify(err), Err: err}
}

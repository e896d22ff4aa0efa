// Package repository defines the storage handle the record services are
// written against. Implementations live under internal/infra.
package repository

import (
	"context"

	"blogful/internal/domain/entity"
)

// Scanner is the row view passed to a ScanFunc. *sql.Rows satisfies it.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc is called once per result row.
type ScanFunc func(row Scanner) error

// Handle is the live storage session shared by every service call.
// The process that opens a Handle also closes it; services never do.
type Handle interface {
	// Select runs a filtered select and calls scan for each row in order.
	Select(ctx context.Context, q SelectQuery, scan ScanFunc) error

	// InsertReturning inserts one row and scans the stored row back,
	// including storage-assigned identity and defaults. An empty returning
	// list returns every column.
	InsertReturning(ctx context.Context, table string, values entity.Fields, returning []string, scan ScanFunc) error

	// Update sets the given columns on rows matching where and reports how
	// many rows changed.
	Update(ctx context.Context, table string, set entity.Fields, where ...Condition) (int64, error)

	// Delete removes rows matching where and reports how many were removed.
	Delete(ctx context.Context, table string, where ...Condition) (int64, error)
}

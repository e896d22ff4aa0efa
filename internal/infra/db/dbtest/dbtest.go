// Package dbtest provides migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"blogful/internal/infra/adapter/persistence/sqlstore"
	"blogful/internal/infra/db"
)

// OpenSQLite returns a migrated in-memory database that is closed when the
// test ends.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.Config{Driver: db.DriverSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.MigrateUp(ctx, conn, db.DriverSQLite); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return conn
}

// NewStore returns a store over a fresh database from OpenSQLite.
func NewStore(t testing.TB) (*sqlstore.Store, *sql.DB) {
	t.Helper()
	conn := OpenSQLite(t)
	return sqlstore.New(conn, sqlstore.SQLite), conn
}

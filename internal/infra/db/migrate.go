package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Table names created by MigrateUp.
const (
	ArticlesTable     = "blogful_articles"
	ShoppingListTable = "shopping_list"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var postgresUp = []string{
	`CREATE TABLE IF NOT EXISTS blogful_articles (
    id             INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    title          TEXT NOT NULL,
    region         TEXT NOT NULL,
    content        TEXT NOT NULL DEFAULT '',
    date_published TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS shopping_list (
    id         INTEGER PRIMARY KEY GENERATED BY DEFAULT AS IDENTITY,
    name       TEXT NOT NULL,
    price      NUMERIC(12, 2) NOT NULL,
    category   TEXT NOT NULL CHECK (category IN ('Main', 'Snack', 'Lunch', 'Breakfast')),
    date_added TIMESTAMPTZ NOT NULL DEFAULT now(),
    checked    BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE INDEX IF NOT EXISTS idx_shopping_list_date_added ON shopping_list(date_added)`,
}

var sqliteUp = []string{
	`CREATE TABLE IF NOT EXISTS blogful_articles (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    title          TEXT NOT NULL,
    region         TEXT NOT NULL,
    content        TEXT NOT NULL DEFAULT '',
    date_published DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS shopping_list (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    name       TEXT NOT NULL,
    price      TEXT NOT NULL,
    category   TEXT NOT NULL CHECK (category IN ('Main', 'Snack', 'Lunch', 'Breakfast')),
    date_added DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    checked    BOOLEAN NOT NULL DEFAULT 0
)`,
	`CREATE INDEX IF NOT EXISTS idx_shopping_list_date_added ON shopping_list(date_added)`,
}

var down = []string{
	`DROP INDEX IF EXISTS idx_shopping_list_date_added`,
	`DROP TABLE IF EXISTS shopping_list`,
	`DROP TABLE IF EXISTS blogful_articles`,
}

// MigrateUp creates the record tables if they do not exist.
func MigrateUp(ctx context.Context, db Execer, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresUp
	case DriverSQLite:
		stmts = sqliteUp
	default:
		return fmt.Errorf("migrate: unsupported driver %q", driver)
	}
	return execAll(ctx, db, stmts)
}

// MigrateDown drops the record tables and everything in them.
func MigrateDown(ctx context.Context, db Execer) error {
	return execAll(ctx, db, down)
}

// Truncate removes every row from tables and restarts their id sequences,
// so the next insert into an emptied table is assigned id 1.
func Truncate(ctx context.Context, db Execer, driver string, tables ...string) error {
	if len(tables) == 0 {
		tables = []string{ArticlesTable, ShoppingListTable}
	}
	switch driver {
	case DriverPostgres:
		_, err := db.ExecContext(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY")
		if err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		return nil
	case DriverSQLite:
		stmts := make([]string, 0, len(tables)+1)
		quoted := make([]string, len(tables))
		for i, t := range tables {
			stmts = append(stmts, "DELETE FROM "+t)
			quoted[i] = "'" + t + "'"
		}
		stmts = append(stmts, "DELETE FROM sqlite_sequence WHERE name IN ("+strings.Join(quoted, ", ")+")")
		if err := execAll(ctx, db, stmts); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("truncate: unsupported driver %q", driver)
	}
}

// SyncSequences moves each table's identity sequence past its largest id.
// Rows inserted with explicit ids do not advance PostgreSQL sequences;
// SQLite tracks them itself, so it is a no-op there.
func SyncSequences(ctx context.Context, db Execer, driver string, tables ...string) error {
	if driver != DriverPostgres {
		return nil
	}
	if len(tables) == 0 {
		tables = []string{ArticlesTable, ShoppingListTable}
	}
	for _, t := range tables {
		stmt := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 1), MAX(id) IS NOT NULL) FROM %[1]s`, t)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sync sequence %s: %w", t, err)
		}
	}
	return nil
}

func execAll(ctx context.Context, db Execer, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

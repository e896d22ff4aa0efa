// Package sqlstore implements repository.Handle on top of database/sql for
// PostgreSQL (pgx stdlib driver) and SQLite (modernc.org/sqlite).
package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Kind classifies a storage failure.
type Kind int

const (
	KindOther Kind = iota
	KindConstraintViolation
	KindConnectionFailure
)

func (k Kind) String() string {
	switch k {
	case KindConstraintViolation:
		return "constraint_violation"
	case KindConnectionFailure:
		return "connection_failure"
	default:
		return "other"
	}
}

// Dialect holds the SQL differences between the supported engines.
type Dialect interface {
	// Name is the database/sql driver name.
	Name() string
	// Placeholder returns the bind marker for the n-th argument (1-based).
	Placeholder(n int) string
	// Quote quotes an identifier.
	Quote(ident string) string
	// Like renders a case-insensitive pattern match.
	Like(column, placeholder string) string
	// DaysAgo renders a timestamp days in the past and the argument bound to it.
	DaysAgo(placeholder string, days int) (string, any)
	// SumText renders a decimal sum as text.
	SumText(column string) string
	// Bind normalises an argument before it is sent to the driver.
	Bind(v any) any
	// Classify maps a driver error to a Kind.
	Classify(err error) Kind
}

// Postgres is the PostgreSQL dialect.
var Postgres Dialect = postgresDialect{}

// SQLite is the SQLite dialect.
var SQLite Dialect = sqliteDialect{}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driverName string) (Dialect, error) {
	switch driverName {
	case "pgx", "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driverName)
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "pgx" }

func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgresDialect) Quote(ident string) string { return quoteIdent(ident) }

func (postgresDialect) Like(column, placeholder string) string {
	return column + " ILIKE " + placeholder
}

func (postgresDialect) DaysAgo(placeholder string, days int) (string, any) {
	return "now() - make_interval(days => " + placeholder + ")", days
}

func (postgresDialect) SumText(column string) string {
	return "CAST(SUM(" + column + ") AS TEXT)"
}

func (postgresDialect) Bind(v any) any { return v }

func (postgresDialect) Classify(err error) Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return KindConstraintViolation
		case strings.HasPrefix(pgErr.Code, "08"):
			return KindConnectionFailure
		}
		return KindOther
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindConnectionFailure
	}
	return classifyCommon(err)
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) Quote(ident string) string { return quoteIdent(ident) }

// SQLite LIKE ignores ASCII case already; it has no default escape character.
func (sqliteDialect) Like(column, placeholder string) string {
	return column + " LIKE " + placeholder + ` ESCAPE '\'`
}

func (sqliteDialect) DaysAgo(placeholder string, days int) (string, any) {
	return "datetime('now', " + placeholder + ")", fmt.Sprintf("%+d days", -days)
}

func (sqliteDialect) SumText(column string) string {
	return "printf('%.2f', SUM(CAST(" + column + " AS REAL)))"
}

// Timestamps are stored as text in SQLite, so they are sent in UTC to keep
// lexical and chronological order the same.
func (sqliteDialect) Bind(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}

func (sqliteDialect) Classify(err error) Kind {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT:
			return KindConstraintViolation
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB:
			return KindConnectionFailure
		}
		return KindOther
	}
	return classifyCommon(err)
}

func classifyCommon(err error) Kind {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return KindConnectionFailure
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindConnectionFailure
	}
	return KindOther
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

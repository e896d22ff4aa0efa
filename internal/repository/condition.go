package repository

import "strings"

// Operator identifies how a Condition is rendered.
type Operator int

const (
	OpEq Operator = iota + 1
	OpILike
	OpNotNull
	OpOlderThan
	OpNewerThan
	OpRaw
)

// Condition is one WHERE predicate. Conditions passed together are ANDed.
type Condition struct {
	Op     Operator
	Column string
	Value  any
	// Expr and Args are only used by OpRaw. Expr uses ? as placeholder.
	Expr string
	Args []any
}

// Eq matches rows where column equals value.
func Eq(column string, value any) Condition {
	return Condition{Op: OpEq, Column: column, Value: value}
}

// ILike matches column against a case-insensitive LIKE pattern.
func ILike(column, pattern string) Condition {
	return Condition{Op: OpILike, Column: column, Value: pattern}
}

// Contains matches rows whose column contains term, ignoring case.
// LIKE wildcards inside term are escaped.
func Contains(column, term string) Condition {
	return ILike(column, "%"+EscapeLike(term)+"%")
}

// NotNull matches rows where column is set.
func NotNull(column string) Condition {
	return Condition{Op: OpNotNull, Column: column}
}

// OlderThan matches rows whose timestamp column lies more than days in the past.
func OlderThan(column string, days int) Condition {
	return Condition{Op: OpOlderThan, Column: column, Value: days}
}

// NewerThan matches rows whose timestamp column lies within the last days.
func NewerThan(column string, days int) Condition {
	return Condition{Op: OpNewerThan, Column: column, Value: days}
}

// Raw passes expr through verbatim. Each ? in expr is bound to the next arg.
func Raw(expr string, args ...any) Condition {
	return Condition{Op: OpRaw, Expr: expr, Args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards using backslash as the escape character.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

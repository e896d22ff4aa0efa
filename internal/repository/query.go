package repository

// AggregateFunc is an aggregate a select may compute.
type AggregateFunc int

const (
	// AggSum sums a decimal column. The total is returned as text so no
	// precision is lost.
	AggSum AggregateFunc = iota + 1
	// AggCount counts non-null values of a column.
	AggCount
)

// Aggregate is one computed output column.
type Aggregate struct {
	Func   AggregateFunc
	Column string
	Alias  string
}

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// SelectQuery describes a select against a single table.
type SelectQuery struct {
	Table string
	// Columns to return before any aggregates. Empty with no aggregates
	// selects every column.
	Columns    []string
	Aggregates []Aggregate
	Where      []Condition
	GroupBy    []string
	OrderBy    []Order
	// Limit of zero means no limit.
	Limit  int
	Offset int
}

package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"blogful/internal/domain/entity"
	"blogful/internal/repository"
)

var (
	errNoTable    = errors.New("table is required")
	errNoValues   = errors.New("at least one column value is required")
	errBadRawArgs = errors.New("raw condition placeholder count does not match args")
)

// builder accumulates one statement and its arguments. Placeholders are
// numbered in the order arguments are added, so clauses must be written
// left to right.
type builder struct {
	d    Dialect
	sb   strings.Builder
	args []any
}

func newBuilder(d Dialect) *builder {
	return &builder{d: d}
}

func (b *builder) write(parts ...string) {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, b.d.Bind(v))
	return b.d.Placeholder(len(b.args))
}

func (b *builder) quoteList(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = b.d.Quote(c)
	}
	return strings.Join(quoted, ", ")
}

func (b *builder) where(conds []repository.Condition) error {
	if len(conds) == 0 {
		return nil
	}
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		p, err := b.condition(c)
		if err != nil {
			return err
		}
		parts = append(parts, p)
	}
	b.write(" WHERE ", strings.Join(parts, " AND "))
	return nil
}

func (b *builder) condition(c repository.Condition) (string, error) {
	col := b.d.Quote(c.Column)
	switch c.Op {
	case repository.OpEq:
		return col + " = " + b.arg(c.Value), nil
	case repository.OpILike:
		return b.d.Like(col, b.arg(c.Value)), nil
	case repository.OpNotNull:
		return col + " IS NOT NULL", nil
	case repository.OpOlderThan, repository.OpNewerThan:
		days, ok := c.Value.(int)
		if !ok {
			return "", fmt.Errorf("%s: interval must be whole days, got %T", c.Column, c.Value)
		}
		expr, v := b.d.DaysAgo(b.d.Placeholder(len(b.args)+1), days)
		b.args = append(b.args, v)
		if c.Op == repository.OpOlderThan {
			return col + " < " + expr, nil
		}
		return col + " > " + expr, nil
	case repository.OpRaw:
		return b.raw(c.Expr, c.Args)
	default:
		return "", fmt.Errorf("unknown condition operator %d", c.Op)
	}
}

func (b *builder) raw(expr string, args []any) (string, error) {
	if strings.Count(expr, "?") != len(args) {
		return "", errBadRawArgs
	}
	var out strings.Builder
	i := 0
	for _, r := range expr {
		if r == '?' {
			out.WriteString(b.arg(args[i]))
			i++
			continue
		}
		out.WriteRune(r)
	}
	return "(" + out.String() + ")", nil
}

func (b *builder) aggregate(a repository.Aggregate) (string, error) {
	var expr string
	switch a.Func {
	case repository.AggSum:
		expr = b.d.SumText(b.d.Quote(a.Column))
	case repository.AggCount:
		expr = "COUNT(" + b.d.Quote(a.Column) + ")"
	default:
		return "", fmt.Errorf("unknown aggregate %d", a.Func)
	}
	if a.Alias != "" {
		expr += " AS " + b.d.Quote(a.Alias)
	}
	return expr, nil
}

func (b *builder) String() string { return b.sb.String() }

func buildSelect(d Dialect, q repository.SelectQuery) (string, []any, error) {
	if q.Table == "" {
		return "", nil, errNoTable
	}
	b := newBuilder(d)

	outputs := make([]string, 0, len(q.Columns)+len(q.Aggregates))
	for _, c := range q.Columns {
		outputs = append(outputs, d.Quote(c))
	}
	for _, a := range q.Aggregates {
		expr, err := b.aggregate(a)
		if err != nil {
			return "", nil, err
		}
		outputs = append(outputs, expr)
	}
	if len(outputs) == 0 {
		outputs = append(outputs, "*")
	}

	b.write("SELECT ", strings.Join(outputs, ", "), " FROM ", d.Quote(q.Table))
	if err := b.where(q.Where); err != nil {
		return "", nil, err
	}
	if len(q.GroupBy) > 0 {
		b.write(" GROUP BY ", b.quoteList(q.GroupBy))
	}
	if len(q.OrderBy) > 0 {
		terms := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			terms[i] = d.Quote(o.Column) + " " + dir
		}
		b.write(" ORDER BY ", strings.Join(terms, ", "))
	}
	if q.Limit > 0 {
		b.write(" LIMIT ", b.arg(q.Limit))
	}
	if q.Offset > 0 {
		if q.Limit <= 0 && d == SQLite {
			// SQLite only accepts OFFSET after a LIMIT.
			b.write(" LIMIT -1")
		}
		b.write(" OFFSET ", b.arg(q.Offset))
	}
	return b.String(), b.args, nil
}

func buildInsert(d Dialect, table string, values entity.Fields, returning []string) (string, []any, error) {
	if table == "" {
		return "", nil, errNoTable
	}
	if len(values) == 0 {
		return "", nil, errNoValues
	}
	b := newBuilder(d)
	cols := values.Columns()
	marks := make([]string, len(cols))
	for i, c := range cols {
		marks[i] = b.arg(values[c])
	}
	ret := "*"
	if len(returning) > 0 {
		ret = b.quoteList(returning)
	}
	b.write("INSERT INTO ", d.Quote(table),
		" (", b.quoteList(cols), ") VALUES (", strings.Join(marks, ", "), ")",
		" RETURNING ", ret)
	return b.String(), b.args, nil
}

func buildUpdate(d Dialect, table string, set entity.Fields, where []repository.Condition) (string, []any, error) {
	if table == "" {
		return "", nil, errNoTable
	}
	if len(set) == 0 {
		return "", nil, errNoValues
	}
	b := newBuilder(d)
	cols := set.Columns()
	assigns := make([]string, len(cols))
	for i, c := range cols {
		assigns[i] = d.Quote(c) + " = " + b.arg(set[c])
	}
	b.write("UPDATE ", d.Quote(table), " SET ", strings.Join(assigns, ", "))
	if err := b.where(where); err != nil {
		return "", nil, err
	}
	return b.String(), b.args, nil
}

func buildDelete(d Dialect, table string, where []repository.Condition) (string, []any, error) {
	if table == "" {
		return "", nil, errNoTable
	}
	b := newBuilder(d)
	b.write("DELETE FROM ", d.Quote(table))
	if err := b.where(where); err != nil {
		return "", nil, err
	}
	return b.String(), b.args, nil
}

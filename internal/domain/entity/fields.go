package entity

import (
	"fmt"
	"sort"
)

// Fields maps column names to new values. It is the payload of inserts and
// of partial updates, where absent columns keep their stored value.
type Fields map[string]any

// Columns returns the column names of f in sorted order.
func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for c := range f {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// FieldSet is the set of columns a record allows callers to write.
type FieldSet struct {
	names map[string]struct{}
}

// NewFieldSet builds a FieldSet from column names.
func NewFieldSet(names ...string) FieldSet {
	fs := FieldSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		fs.names[n] = struct{}{}
	}
	return fs
}

// Has reports whether name is a writable column.
func (fs FieldSet) Has(name string) bool {
	_, ok := fs.names[name]
	return ok
}

// Names returns the writable columns in sorted order.
func (fs FieldSet) Names() []string {
	out := make([]string, 0, len(fs.names))
	for n := range fs.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Validate checks a partial update. It rejects an empty payload, the
// identity column and any column outside the set.
func (fs FieldSet) Validate(f Fields) error {
	if len(f) == 0 {
		return &ValidationError{Field: "fields", Message: "at least one field is required", Err: ErrInvalidInput}
	}
	for _, col := range f.Columns() {
		if col == "id" {
			return &ValidationError{Field: col, Message: "cannot be changed", Err: ErrImmutableField}
		}
		if !fs.Has(col) {
			return &ValidationError{
				Field:   col,
				Message: fmt.Sprintf("invalid field, must be one of %v", fs.Names()),
				Err:     ErrUnknownField,
			}
		}
	}
	return nil
}

package record_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogful/internal/domain/entity"
	"blogful/internal/repository"
	"blogful/internal/usecase/record"
)

/*──────────────────── stub handle ────────────────────*/

type note struct {
	ID   int64
	Text string
}

type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r[0].(int64)
	*dest[1].(*string) = r[1].(string)
	return nil
}

// stubHandle records the last call and serves rows from memory.
type stubHandle struct {
	rows     []fakeRow
	err      error
	affected int64

	lastQuery  repository.SelectQuery
	lastTable  string
	lastValues entity.Fields
	lastWhere  []repository.Condition
	calls      int
}

func (h *stubHandle) Select(_ context.Context, q repository.SelectQuery, scan repository.ScanFunc) error {
	h.calls++
	h.lastQuery = q
	if h.err != nil {
		return h.err
	}
	for _, r := range h.rows {
		if err := scan(r); err != nil {
			return err
		}
	}
	return nil
}

func (h *stubHandle) InsertReturning(_ context.Context, table string, values entity.Fields, _ []string, scan repository.ScanFunc) error {
	h.calls++
	h.lastTable, h.lastValues = table, values
	if h.err != nil {
		return h.err
	}
	for _, r := range h.rows {
		if err := scan(r); err != nil {
			return err
		}
	}
	return nil
}

func (h *stubHandle) Update(_ context.Context, table string, set entity.Fields, where ...repository.Condition) (int64, error) {
	h.calls++
	h.lastTable, h.lastValues, h.lastWhere = table, set, where
	return h.affected, h.err
}

func (h *stubHandle) Delete(_ context.Context, table string, where ...repository.Condition) (int64, error) {
	h.calls++
	h.lastTable, h.lastWhere = table, where
	return h.affected, h.err
}

var noteSchema = record.Schema[note]{
	Table:   "notes",
	Columns: []string{"id", "text"},
	Fields:  entity.NewFieldSet("text"),
	Scan: func(row repository.Scanner) (note, error) {
		var n note
		err := row.Scan(&n.ID, &n.Text)
		return n, err
	},
	Values: func(n note) entity.Fields { return entity.Fields{"text": n.Text} },
}

/*──────────────────── tests ────────────────────*/

func TestService_ListAll(t *testing.T) {
	h := &stubHandle{rows: []fakeRow{{int64(1), "a"}, {int64(2), "b"}}}
	got, err := record.New(noteSchema).ListAll(context.Background(), h)

	require.NoError(t, err)
	assert.Equal(t, []note{{1, "a"}, {2, "b"}}, got)
	assert.Equal(t, "notes", h.lastQuery.Table)
	assert.Equal(t, []string{"id", "text"}, h.lastQuery.Columns)
	assert.Empty(t, h.lastQuery.Where)
}

func TestService_ListAll_EmptyIsNotNil(t *testing.T) {
	got, err := record.New(noteSchema).ListAll(context.Background(), &stubHandle{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestService_ListAll_PropagatesError(t *testing.T) {
	storageErr := errors.New("connection refused")
	got, err := record.New(noteSchema).ListAll(context.Background(), &stubHandle{err: storageErr})
	assert.Same(t, storageErr, err)
	assert.Nil(t, got)
}

func TestService_GetByID(t *testing.T) {
	h := &stubHandle{rows: []fakeRow{{int64(7), "seven"}}}
	got, err := record.New(noteSchema).GetByID(context.Background(), h, 7)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, note{7, "seven"}, *got)
	assert.Equal(t, []repository.Condition{repository.Eq("id", int64(7))}, h.lastQuery.Where)
	assert.Equal(t, 1, h.lastQuery.Limit)
}

func TestService_GetByID_Absent(t *testing.T) {
	got, err := record.New(noteSchema).GetByID(context.Background(), &stubHandle{}, 7)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Insert(t *testing.T) {
	h := &stubHandle{rows: []fakeRow{{int64(1), "hello"}}}
	got, err := record.New(noteSchema).Insert(context.Background(), h, note{Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, note{1, "hello"}, got)
	assert.Equal(t, "notes", h.lastTable)
	assert.Equal(t, entity.Fields{"text": "hello"}, h.lastValues)
}

func TestService_Insert_NoRowReturned(t *testing.T) {
	_, err := record.New(noteSchema).Insert(context.Background(), &stubHandle{}, note{Text: "x"})
	assert.Error(t, err)
}

func TestService_Update(t *testing.T) {
	h := &stubHandle{affected: 1}
	n, err := record.New(noteSchema).Update(context.Background(), h, 3, entity.Fields{"text": "new"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, entity.Fields{"text": "new"}, h.lastValues)
	assert.Equal(t, []repository.Condition{repository.Eq("id", int64(3))}, h.lastWhere)
}

func TestService_Update_ValidatesBeforeQuery(t *testing.T) {
	h := &stubHandle{affected: 1}
	svc := record.New(noteSchema)

	_, err := svc.Update(context.Background(), h, 3, entity.Fields{"colour": "red"})
	assert.ErrorIs(t, err, entity.ErrUnknownField)

	_, err = svc.Update(context.Background(), h, 3, entity.Fields{"id": int64(4)})
	assert.ErrorIs(t, err, entity.ErrImmutableField)

	assert.Zero(t, h.calls, "no statement may run for rejected fields")
}

func TestService_DeleteByID(t *testing.T) {
	h := &stubHandle{affected: 0}
	n, err := record.New(noteSchema).DeleteByID(context.Background(), h, 5)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "notes", h.lastTable)
	assert.Equal(t, []repository.Condition{repository.Eq("id", int64(5))}, h.lastWhere)
}

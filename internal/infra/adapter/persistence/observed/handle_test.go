package observed_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"blogful/internal/domain/entity"
	"blogful/internal/infra/adapter/persistence/observed"
	"blogful/internal/infra/db"
	"blogful/internal/infra/db/dbtest"
	"blogful/internal/observability/metrics"
	"blogful/internal/repository"
)

func setup(t *testing.T) (*observed.Handle, *tracetest.InMemoryExporter, *bytes.Buffer) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	store, _ := dbtest.NewStore(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return observed.New(store, logger), exporter, &buf
}

func insertItem(ctx context.Context, h repository.Handle, category string) error {
	return h.InsertReturning(ctx, db.ShoppingListTable, entity.Fields{
		"name":     "Oats",
		"price":    "3.50",
		"category": category,
	}, []string{"id"}, func(row repository.Scanner) error {
		var id int64
		return row.Scan(&id)
	})
}

func TestHandle_RecordsSuccessfulOperations(t *testing.T) {
	h, exporter, logs := setup(t)
	ctx := context.Background()

	require.NoError(t, insertItem(ctx, h, "Breakfast"))

	var rows int
	err := h.Select(ctx, repository.SelectQuery{Table: db.ShoppingListTable, Columns: []string{"id"}},
		func(row repository.Scanner) error {
			rows++
			var id int64
			return row.Scan(&id)
		})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	deletedBefore := testutil.ToFloat64(metrics.DBRowsAffected.WithLabelValues(db.ShoppingListTable, "delete"))
	n, err := h.Delete(ctx, db.ShoppingListTable, repository.Eq("id", 1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, deletedBefore+1,
		testutil.ToFloat64(metrics.DBRowsAffected.WithLabelValues(db.ShoppingListTable, "delete")))

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)
	assert.Equal(t, "shopping_list.insert", spans[0].Name)
	assert.Equal(t, "shopping_list.select", spans[1].Name)
	assert.Equal(t, "shopping_list.delete", spans[2].Name)
	assert.Contains(t, logs.String(), "operation=select")
}

func TestHandle_PassesErrorsThroughUnchanged(t *testing.T) {
	h, exporter, logs := setup(t)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.DBQueryErrors.WithLabelValues(
		db.ShoppingListTable, "insert", "constraint_violation"))

	err := insertItem(ctx, h, "Dessert")
	require.ErrorIs(t, err, repository.ErrConstraintViolation)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.DBQueryErrors.WithLabelValues(
		db.ShoppingListTable, "insert", "constraint_violation")))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Contains(t, logs.String(), "db query failed")
}

func TestHandle_UpdateReportsZeroRows(t *testing.T) {
	h, _, _ := setup(t)

	n, err := h.Update(context.Background(), db.ShoppingListTable,
		entity.Fields{"checked": true}, repository.Eq("id", 42))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "canceled", observed.Kind(context.Canceled))
	assert.Equal(t, "connection_failure", observed.Kind(repository.ErrConnectionFailure))
	assert.Equal(t, "other", observed.Kind(assert.AnError))
}

// Package observed decorates a repository.Handle with Prometheus metrics,
// OpenTelemetry spans and debug logging. Results and errors pass through
// unchanged.
package observed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"blogful/internal/domain/entity"
	"blogful/internal/observability/logging"
	"blogful/internal/observability/metrics"
	"blogful/internal/observability/tracing"
	"blogful/internal/repository"
)

// Handle is an instrumented repository.Handle.
type Handle struct {
	next   repository.Handle
	logger *slog.Logger
}

var _ repository.Handle = (*Handle)(nil)

// New wraps next. A nil logger uses slog.Default.
func New(next repository.Handle, logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handle{next: next, logger: logger}
}

func (h *Handle) Select(ctx context.Context, q repository.SelectQuery, scan repository.ScanFunc) error {
	var rows int64
	err := h.observe(ctx, q.Table, "select", func(ctx context.Context) (int64, error) {
		err := h.next.Select(ctx, q, func(row repository.Scanner) error {
			rows++
			return scan(row)
		})
		return rows, err
	})
	return err
}

func (h *Handle) InsertReturning(ctx context.Context, table string, values entity.Fields, returning []string, scan repository.ScanFunc) error {
	return h.observe(ctx, table, "insert", func(ctx context.Context) (int64, error) {
		var rows int64
		err := h.next.InsertReturning(ctx, table, values, returning, func(row repository.Scanner) error {
			rows++
			return scan(row)
		})
		return rows, err
	})
}

func (h *Handle) Update(ctx context.Context, table string, set entity.Fields, where ...repository.Condition) (int64, error) {
	var n int64
	err := h.observe(ctx, table, "update", func(ctx context.Context) (int64, error) {
		var err error
		n, err = h.next.Update(ctx, table, set, where...)
		return n, err
	})
	return n, err
}

func (h *Handle) Delete(ctx context.Context, table string, where ...repository.Condition) (int64, error) {
	var n int64
	err := h.observe(ctx, table, "delete", func(ctx context.Context) (int64, error) {
		var err error
		n, err = h.next.Delete(ctx, table, where...)
		return n, err
	})
	return n, err
}

func (h *Handle) observe(ctx context.Context, table, op string, fn func(context.Context) (int64, error)) error {
	ctx, span := tracing.GetTracer().Start(ctx, table+"."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.sql.table", table),
			attribute.String("db.operation", op),
		),
	)
	defer span.End()

	start := time.Now()
	rows, err := fn(ctx)
	elapsed := time.Since(start)

	kind := ""
	if err != nil {
		kind = Kind(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
	}
	span.SetAttributes(attribute.Int64("db.rows", rows))

	metrics.RecordDBQuery(table, op, elapsed, kind)
	if op == "update" || op == "delete" {
		metrics.RecordRowsAffected(table, op, rows)
	}

	logger := logging.WithRequestID(ctx, h.logger)
	if err != nil {
		logger.Warn("db query failed",
			slog.String("table", table),
			slog.String("operation", op),
			slog.String("kind", kind),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
		return err
	}
	logger.Debug("db query",
		slog.String("table", table),
		slog.String("operation", op),
		slog.Int64("rows", rows),
		slog.Duration("duration", elapsed))
	return nil
}

// Kind labels a storage error for metrics.
func Kind(err error) string {
	switch {
	case errors.Is(err, repository.ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, repository.ErrConnectionFailure):
		return "connection_failure"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}

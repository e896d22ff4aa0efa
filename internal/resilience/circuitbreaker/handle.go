package circuitbreaker

import (
	"context"

	"blogful/internal/domain/entity"
	"blogful/internal/repository"
)

// Handle guards every operation of the wrapped repository.Handle with one
// shared breaker. It never retries.
type Handle struct {
	cb   *CircuitBreaker
	next repository.Handle
}

var _ repository.Handle = (*Handle)(nil)

// NewHandle wraps next with a breaker built from DBConfig.
func NewHandle(next repository.Handle) *Handle {
	return NewHandleWithConfig(next, DBConfig())
}

// NewHandleWithConfig wraps next with a breaker built from cfg.
func NewHandleWithConfig(next repository.Handle, cfg Config) *Handle {
	return &Handle{cb: New(cfg), next: next}
}

// Breaker exposes the underlying breaker for health reporting.
func (h *Handle) Breaker() *CircuitBreaker { return h.cb }

func (h *Handle) Select(ctx context.Context, q repository.SelectQuery, scan repository.ScanFunc) error {
	return h.cb.Run(func() error {
		return h.next.Select(ctx, q, scan)
	})
}

func (h *Handle) InsertReturning(ctx context.Context, table string, values entity.Fields, returning []string, scan repository.ScanFunc) error {
	return h.cb.Run(func() error {
		return h.next.InsertReturning(ctx, table, values, returning, scan)
	})
}

func (h *Handle) Update(ctx context.Context, table string, set entity.Fields, where ...repository.Condition) (int64, error) {
	var n int64
	err := h.cb.Run(func() error {
		var err error
		n, err = h.next.Update(ctx, table, set, where...)
		return err
	})
	return n, err
}

func (h *Handle) Delete(ctx context.Context, table string, where ...repository.Condition) (int64, error) {
	var n int64
	err := h.cb.Run(func() error {
		var err error
		n, err = h.next.Delete(ctx, table, where...)
		return err
	})
	return n, err
}

// Command api serves the articles and shopping list over HTTP.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"blogful/internal/config"
	hhttp "blogful/internal/handler/http"
	harticle "blogful/internal/handler/http/article"
	"blogful/internal/handler/http/requestid"
	hshopping "blogful/internal/handler/http/shopping"
	"blogful/internal/infra/adapter/persistence/observed"
	"blogful/internal/infra/adapter/persistence/sqlstore"
	"blogful/internal/infra/db"
	"blogful/internal/observability/logging"
	"blogful/internal/observability/slo"
	"blogful/internal/observability/tracing"
	"blogful/internal/repository"
	"blogful/internal/resilience/circuitbreaker"
	artUC "blogful/internal/usecase/article"
	shopUC "blogful/internal/usecase/shopping"
)

const maxBodyBytes = 1 << 20

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any("error", err))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.Setup(cfg.Version)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown", slog.Any("error", err))
		}
	}()

	database, err := db.Open(ctx, cfg.DB())
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database, cfg.Database.Driver); err != nil {
		return err
	}

	handle, breaker, err := newHandle(cfg, database, logger)
	if err != nil {
		return err
	}
	var limits []hhttp.Middleware
	if cfg.HTTP.RateLimit > 0 {
		limits = append(limits, hhttp.RateLimit(rate.NewLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)))
	}

	window := slo.NewWindow()
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newRouter(logger, database, handle, breaker, window, cfg.Version, limits...),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("driver", cfg.Database.Driver),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return slo.Run(gctx, window, slo.DefaultInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("server stopped")
	return err
}

// newHandle builds the storage stack: sqlstore, optionally behind the
// circuit breaker, with instrumentation outermost so rejected calls are
// recorded too.
func newHandle(cfg *config.Config, database *sql.DB, logger *slog.Logger) (repository.Handle, hhttp.BreakerState, error) {
	dialect, err := sqlstore.DialectFor(cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}

	var handle repository.Handle = sqlstore.New(database, dialect)
	var breaker hhttp.BreakerState
	if cfg.Database.CircuitBreaker {
		cb := circuitbreaker.NewHandle(handle)
		handle, breaker = cb, cb.Breaker()
	}
	return observed.New(handle, logger), breaker, nil
}

func newRouter(logger *slog.Logger, database *sql.DB, handle repository.Handle, breaker hhttp.BreakerState, window *slo.Window, version string, limits ...hhttp.Middleware) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: version})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artUC.NewService(), handle)
	hshopping.Register(mux, shopUC.NewService(), handle)

	mws := []hhttp.Middleware{
		requestid.Middleware,
		hhttp.Recover(logger),
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.SLOMiddleware(window),
	}
	mws = append(mws, limits...)
	mws = append(mws, hhttp.LimitRequestBody(maxBodyBytes))
	return hhttp.Chain(mux, mws...)
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogful/internal/handler/http/pathutil"
	"blogful/internal/handler/http/responsewriter"
	"blogful/internal/observability/metrics"
	"blogful/internal/observability/slo"
)

// MetricsMiddleware records request count, latency and response size. Paths
// are labelled by route so ids do not explode label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(
			r.Method,
			pathutil.NormalizePath(r.URL.Path),
			strconv.Itoa(rw.StatusCode()),
			time.Since(start),
			rw.BytesWritten(),
		)
	})
}

// SLOMiddleware feeds every response into window.
func SLOMiddleware(window *slo.Window) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := responsewriter.Wrap(w)

			start := time.Now()
			next.ServeHTTP(rw, r)
			window.Observe(rw.StatusCode(), time.Since(start))
		})
	}
}

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

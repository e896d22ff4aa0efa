// Package slo tracks the HTTP surface against its service level objectives.
// A Window collects request outcomes; Run flushes it into gauges on a fixed
// interval.
package slo

import (
	"context"
	"math"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets.
const (
	// AvailabilitySLO is the target share of non-5xx responses, in percent.
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the p95 latency target in seconds.
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the p99 latency target in seconds.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum 5xx ratio.
	ErrorRateSLO = 0.001
)

// DefaultInterval is how often Run publishes a window.
const DefaultInterval = time.Minute

var (
	SLOAvailability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Share of non-5xx responses in the last window (0-1), target: 0.999",
	})

	SLOLatencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p95_seconds",
		Help: "p95 latency in the last window, target: 0.200",
	})

	SLOLatencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p99_seconds",
		Help: "p99 latency in the last window, target: 0.500",
	})

	SLOErrorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "Share of 5xx responses in the last window (0-1), target: 0.001",
	})
)

// Snapshot summarises one window.
type Snapshot struct {
	Requests     int
	Availability float64
	ErrorRate    float64
	P95          float64 // seconds
	P99          float64 // seconds
}

// Window accumulates request outcomes until the next Flush. It is safe for
// concurrent use.
type Window struct {
	mu        sync.Mutex
	failed    int
	latencies []float64
}

// NewWindow returns an empty window.
func NewWindow() *Window {
	return &Window{}
}

// Observe records one response. Any 5xx status counts against availability.
func (w *Window) Observe(status int, d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if status >= http.StatusInternalServerError {
		w.failed++
	}
	w.latencies = append(w.latencies, d.Seconds())
}

// Flush summarises and resets the window. An empty window reports full
// availability and zero latency.
func (w *Window) Flush() Snapshot {
	w.mu.Lock()
	lat, failed := w.latencies, w.failed
	w.latencies, w.failed = nil, 0
	w.mu.Unlock()

	n := len(lat)
	if n == 0 {
		return Snapshot{Availability: 1}
	}
	slices.Sort(lat)
	errRate := float64(failed) / float64(n)
	return Snapshot{
		Requests:     n,
		Availability: 1 - errRate,
		ErrorRate:    errRate,
		P95:          percentile(lat, 0.95),
		P99:          percentile(lat, 0.99),
	}
}

// percentile uses the nearest-rank method on sorted values.
func percentile(sorted []float64, p float64) float64 {
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	return sorted[max(rank, 0)]
}

// Publish sets the SLO gauges from s. Latency gauges keep their previous
// value when the window saw no traffic.
func Publish(s Snapshot) {
	SLOAvailability.Set(s.Availability)
	SLOErrorRate.Set(s.ErrorRate)
	if s.Requests > 0 {
		SLOLatencyP95.Set(s.P95)
		SLOLatencyP99.Set(s.P99)
	}
}

// Run publishes w every interval until ctx is done.
func Run(ctx context.Context, w *Window, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			Publish(w.Flush())
		}
	}
}

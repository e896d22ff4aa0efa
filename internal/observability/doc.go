// Package observability groups the logging, metrics, tracing and SLO
// subpackages shared by the HTTP host, the storage handle and the CLI.
//
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP and storage operations
//   - tracing: OpenTelemetry provider setup and HTTP middleware
//   - slo: rolling availability and latency against targets
package observability

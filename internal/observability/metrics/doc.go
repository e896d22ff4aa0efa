// Package metrics provides the Prometheus collectors of the application.
//
// All collectors are registered with the default registry through promauto
// and exposed via the /metrics endpoint:
//   - HTTP request metrics (count, duration, response size)
//   - Storage handle metrics (duration, errors, rows affected) per table
//   - Connection pool gauges sampled from database/sql
//
// Example usage:
//
//	start := time.Now()
//	n, err := h.Delete(ctx, "shopping_list", repository.Eq("id", id))
//	metrics.RecordDBQuery("shopping_list", "delete", time.Since(start), kind)
//	metrics.RecordRowsAffected("shopping_list", "delete", n)
package metrics

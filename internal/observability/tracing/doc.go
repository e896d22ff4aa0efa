// Package tracing provides OpenTelemetry tracing for HTTP requests and
// storage operations.
//
// Example usage:
//
//	shutdown := tracing.Setup("1.0.0")
//	defer func() { _ = shutdown(context.Background()) }()
//
//	ctx, span := tracing.GetTracer().Start(ctx, "shopping_list.select")
//	defer span.End()
package tracing

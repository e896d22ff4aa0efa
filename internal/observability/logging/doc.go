// Package logging builds the application's slog loggers and carries
// request-scoped fields through context.
//
// Example usage:
//
//	logger := logging.New(os.Stdout, "info", "json")
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging

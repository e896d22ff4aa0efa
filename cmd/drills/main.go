// Command drills runs the shopping list reports and database chores from
// the command line.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"blogful/internal/observability/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any("error", err))
	}
	slog.SetDefault(logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), logging.FormatText))

	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// Package config loads process settings for the API and CLI hosts.
package config

import (
	"errors"
	"fmt"
	"time"

	"blogful/internal/infra/db"
	"blogful/internal/observability/logging"
	envconfig "blogful/pkg/config"
)

// Config is the complete process configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig

	// Version is reported by /health and attached to traces.
	Version string
}

// DatabaseConfig selects the engine and pool settings.
type DatabaseConfig struct {
	// Driver is "pgx" or "sqlite". Default: pgx
	Driver string
	// URL is the DSN passed to the driver. Required.
	URL  string
	Pool db.ConnectionConfig
	// CircuitBreaker wraps the storage handle in a breaker. Default: true
	CircuitBreaker bool
}

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string
	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration
	// ReadHeaderTimeout. Default: 5s
	ReadHeaderTimeout time.Duration
	// RateLimit is the sustained requests per second across all clients.
	// Zero disables limiting. Default: 0
	RateLimit int
	// RateBurst is the token bucket size. Default: 20
	RateBurst int
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	defaults := db.DefaultConnectionConfig()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver: envconfig.GetEnvOneOf("DB_DRIVER", db.DriverPostgres, db.DriverPostgres, db.DriverSQLite),
			URL:    envconfig.GetEnvString("DATABASE_URL", ""),
			Pool: db.ConnectionConfig{
				MaxOpenConns:    envconfig.GetEnvPositiveInt("DB_MAX_OPEN_CONNS", defaults.MaxOpenConns),
				MaxIdleConns:    envconfig.GetEnvPositiveInt("DB_MAX_IDLE_CONNS", defaults.MaxIdleConns),
				ConnMaxLifetime: envconfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", defaults.ConnMaxLifetime),
				ConnMaxIdleTime: envconfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", defaults.ConnMaxIdleTime),
			},
			CircuitBreaker: envconfig.GetEnvBool("DB_CIRCUIT_BREAKER", true),
		},
		HTTP: HTTPConfig{
			Addr:              envconfig.GetEnvString("HTTP_ADDR", ":8080"),
			ShutdownTimeout:   envconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			ReadHeaderTimeout: envconfig.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			RateLimit:         envconfig.GetEnvInt("HTTP_RATE_LIMIT", 0),
			RateBurst:         envconfig.GetEnvPositiveInt("HTTP_RATE_BURST", 20),
		},
		Log: LogConfig{
			Level:  envconfig.GetEnvOneOf("LOG_LEVEL", "info", "debug", "info", "warn", "error"),
			Format: envconfig.GetEnvOneOf("LOG_FORMAT", logging.FormatJSON, logging.FormatJSON, logging.FormatText),
		},
		Version: envconfig.GetEnvString("VERSION", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL cannot be empty")
	}
	if c.Database.Pool.MaxIdleConns > c.Database.Pool.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS (%d) exceeds DB_MAX_OPEN_CONNS (%d)",
			c.Database.Pool.MaxIdleConns, c.Database.Pool.MaxOpenConns)
	}
	if c.HTTP.Addr == "" {
		return errors.New("HTTP_ADDR cannot be empty")
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("HTTP_RATE_LIMIT (%d) cannot be negative", c.HTTP.RateLimit)
	}
	return nil
}

// DB returns the settings db.Open expects.
func (c *Config) DB() db.Config {
	return db.Config{
		Driver: c.Database.Driver,
		DSN:    c.Database.URL,
		Pool:   c.Database.Pool,
	}
}

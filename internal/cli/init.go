// Package cli provides common CLI initialization utilities shared by the
// application entrypoint.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"spendsense/internal/backend"
	"spendsense/internal/config"
	"spendsense/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitSlot builds the persistence slot selected by the config.
// Returns the slot result or exits the process on failure.
func InitSlot(ctx context.Context, logger *log.Logger, cfg *config.Config) *backend.SlotResult {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", "error", err)
		os.Exit(1)
	}

	result, err := backend.NewFactory(logger.WithComponent(log.ComponentBackend)).CreateSlot(ctx, bcfg)
	if err != nil {
		logger.Error("Failed to initialize persistence backend", "error", err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return result
}

// ShutdownContext returns a context cancelled on SIGINT/SIGTERM, plus the
// timeout to allow in-flight work during shutdown.
func ShutdownContext(parent context.Context) (context.Context, context.CancelFunc, time.Duration) {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	return ctx, cancel, 30 * time.Second
}

// Package cli provides common startup utilities for the cmd binaries.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"spendwise/internal/config"
	"spendwise/internal/log"
	"spendwise/internal/storage"
)

// SetupLogger initializes structured logging at the configured level and
// installs it as the process default.
func SetupLogger(cfg *config.Config) *log.Logger {
	level, _ := cfg.SlogLevel()
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// since the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStateStore builds the configured state store, exiting on failure.
func OpenStateStore(logger *log.Logger, cfg *config.Config) storage.KV {
	kv, err := storage.Open(storage.Options{
		Backend:      storage.Backend(cfg.StateBackend),
		DataDir:      cfg.DataDir,
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger.WithComponent(log.ComponentStorage))
	if err != nil {
		logger.Error("failed to open state store",
			log.FieldBackend, cfg.StateBackend, log.FieldError, err)
		os.Exit(1)
	}
	return kv
}

package storage

import (
	"fmt"

	"spendwise/internal/log"
)

// Backend selects the KV implementation.
type Backend string

const (
	FileBackend   Backend = "file"
	SQLiteBackend Backend = "sqlite"
)

// IsValid returns true if the backend type is valid.
func (b Backend) IsValid() bool {
	switch b {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (b Backend) String() string { return string(b) }

// Options carries the backend-specific settings needed by Open.
type Options struct {
	Backend      Backend
	DataDir      string // file backend
	SQLiteDBPath string // sqlite backend
}

// Open creates the KV store for the configured backend.
func Open(opts Options, logger *log.Logger) (KV, error) {
	switch opts.Backend {
	case SQLiteBackend:
		kv, err := NewSQLiteKV(opts.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite state store: %w", err)
		}
		logger.Info("initialized sqlite state store",
			log.FieldBackend, opts.Backend.String(), "db_path", opts.SQLiteDBPath)
		return kv, nil
	case FileBackend:
		kv, err := NewFileKV(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file state store: %w", err)
		}
		logger.Info("initialized file state store",
			log.FieldBackend, opts.Backend.String(), "data_dir", opts.DataDir)
		return kv, nil
	default:
		return nil, fmt.Errorf("invalid state backend: %s", opts.Backend)
	}
}

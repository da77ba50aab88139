// Package backend selects and constructs the record store named by
// configuration.
package backend

import (
	"fmt"
	"log/slog"

	"tally/internal/storage"
)

// Type names a record store implementation.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Config holds what store construction needs.
type Config struct {
	Type Type

	// SQLite specific
	DBPath string
}

// CreateStore builds the configured record store and a cleanup function
// to run at shutdown.
func CreateStore(cfg Config) (storage.RecordStore, CleanupFunc, error) {
	if !cfg.Type.IsValid() {
		return nil, nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLite:
		store, err := storage.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("create sqlite store: %w", err)
		}
		slog.Info("Initialized sqlite record store", "path", cfg.DBPath)
		return store, store.Close, nil
	default:
		slog.Info("Initialized memory record store")
		return storage.NewMemoryStore(), func() error { return nil }, nil
	}
}

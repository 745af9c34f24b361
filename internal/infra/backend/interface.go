// Package backend builds the persistence collaborators from configuration.
package backend

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// Backend bundles the three stores every backend provides.
type Backend struct {
	Ledgers    adapter.LedgerStore
	Users      adapter.UserRepository
	Categories adapter.CustomCategoryStore

	// HealthCheck reports whether the underlying connection is usable.
	HealthCheck func(ctx context.Context) bool
}

// CleanupFunc releases the resources held by a backend.
type CleanupFunc func() error

// BackendResult contains the backend instance and optional cleanup function.
type BackendResult struct {
	Backend *Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// BackendType represents the type of backend.
type BackendType string

const (
	PostgresBackend BackendType = "postgres"
	SQLiteBackend   BackendType = "sqlite"
	RedisBackend    BackendType = "redis"
	MemoryBackend   BackendType = "memory"
)

// String implements fmt.Stringer.
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case PostgresBackend, SQLiteBackend, RedisBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// LedgerStore persists one ledger per user. Every backend satisfies it identically.
type LedgerStore interface {
	// Load returns the stored ledger for userID, or an empty ledger if none exists.
	// Aggregates are recomputed from the stored transactions.
	Load(ctx context.Context, userID uuid.UUID) (ledger.State, error)

	// Save replaces the stored ledger for userID. Last write wins.
	Save(ctx context.Context, userID uuid.UUID, state ledger.State) error

	// Delete removes the stored ledger for userID. Deleting a missing ledger is not an error.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// LedgerReader provides a consistent snapshot of a user's ledger.
type LedgerReader interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (ledger.State, error)
}

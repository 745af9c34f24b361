// Package memory implements the store contracts with mutex-guarded maps.
// Data lives only as long as the process.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

type ledgerStore struct {
	mu      sync.RWMutex
	ledgers map[uuid.UUID][]entity.Transaction
}

// NewLedgerStore creates an empty in-memory ledger store.
func NewLedgerStore() adapter.LedgerStore {
	return &ledgerStore{
		ledgers: make(map[uuid.UUID][]entity.Transaction),
	}
}

func (s *ledgerStore) Load(_ context.Context, userID uuid.UUID) (ledger.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions, ok := s.ledgers[userID]
	if !ok {
		return ledger.Empty(), nil
	}
	return ledger.Recompute(transactions), nil
}

func (s *ledgerStore) Save(_ context.Context, userID uuid.UUID, state ledger.State) error {
	snapshot := ledger.Recompute(state.Transactions)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgers[userID] = snapshot.Transactions
	return nil
}

func (s *ledgerStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ledgers, userID)
	return nil
}

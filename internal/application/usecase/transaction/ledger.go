// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// Ledger is a session over one user's ledger. It loads the state once, applies
// the reducer for every operation and saves the result through the store it
// was opened with.
//
// A Ledger is not safe for concurrent use; Service serializes sessions per user.
type Ledger struct {
	userID uuid.UUID
	store  adapter.LedgerStore
	state  ledger.State
}

// OpenLedger loads the ledger for userID from store.
func OpenLedger(ctx context.Context, store adapter.LedgerStore, userID uuid.UUID) (*Ledger, error) {
	state, err := store.Load(ctx, userID)
	if err != nil {
		if domainerror.IsStorageError(err) {
			return nil, err
		}
		return nil, domainerror.NewStorageError(domainerror.ErrCodeStorageLoad, "failed to load ledger", err)
	}
	return &Ledger{userID: userID, store: store, state: state}, nil
}

// UserID returns the owner of the ledger.
func (l *Ledger) UserID() uuid.UUID {
	return l.userID
}

// State returns the current state.
func (l *Ledger) State() ledger.State {
	return l.state
}

// Add applies ledger.Add and saves. If the save fails the new state is kept and
// returned together with the storage error.
func (l *Ledger) Add(ctx context.Context, txn entity.Transaction) (ledger.State, error) {
	next, err := ledger.Add(l.state, txn)
	if err != nil {
		return l.state, err
	}
	return l.commit(ctx, next)
}

// Update applies ledger.Update and saves.
func (l *Ledger) Update(ctx context.Context, txn entity.Transaction) (ledger.State, error) {
	next, err := ledger.Update(l.state, txn)
	if err != nil {
		return l.state, err
	}
	return l.commit(ctx, next)
}

// Delete applies ledger.Delete and saves.
func (l *Ledger) Delete(ctx context.Context, id uuid.UUID) (ledger.State, error) {
	next, err := ledger.Delete(l.state, id)
	if err != nil {
		return l.state, err
	}
	return l.commit(ctx, next)
}

func (l *Ledger) commit(ctx context.Context, next ledger.State) (ledger.State, error) {
	l.state = next
	if err := l.store.Save(ctx, l.userID, next); err != nil {
		return next, storageFailure(err)
	}
	return next, nil
}

func storageFailure(err error) error {
	if domainerror.IsStorageError(err) {
		return err
	}
	return domainerror.NewStorageError(domainerror.ErrCodeStorageSave, "failed to save ledger", err)
}

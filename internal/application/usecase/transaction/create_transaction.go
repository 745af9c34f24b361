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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Actor Actor
	Draft TransactionDraft
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction entity.Transaction
	Ledger      ledger.State
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	service *Service
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(service *Service) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		service: service,
	}
}

// Execute adds a new transaction to the caller's ledger. When the ledger
// cannot be saved the output still carries the new state and the returned
// error is a storage error.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	txn, err := uc.service.build(ctx, input.Actor, uuid.New(), input.Draft)
	if err != nil {
		return nil, err
	}

	var output *CreateTransactionOutput
	err = uc.service.WithLedger(ctx, input.Actor.UserID, func(l *Ledger) error {
		state, addErr := l.Add(ctx, txn)
		if addErr != nil && !domainerror.IsStorageError(addErr) {
			return addErr
		}
		output = &CreateTransactionOutput{Transaction: txn, Ledger: state}
		if addErr != nil {
			return addErr
		}
		uc.service.publish(ctx, adapter.LedgerEventAdded, input.Actor.UserID, txn, state)
		return nil
	})
	return output, err
}

// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Ledger ledger.State
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	service *Service
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(service *Service) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		service: service,
	}
}

// Execute removes a transaction from the caller's ledger.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	var output *DeleteTransactionOutput
	err := uc.service.WithLedger(ctx, input.UserID, func(l *Ledger) error {
		removed, _, _ := l.State().Find(input.TransactionID)

		state, err := l.Delete(ctx, input.TransactionID)
		if err != nil && !domainerror.IsStorageError(err) {
			return err
		}
		output = &DeleteTransactionOutput{Ledger: state}
		if err != nil {
			return err
		}

		uc.service.publish(ctx, adapter.LedgerEventDeleted, input.UserID, removed, state)
		return nil
	})
	return output, err
}

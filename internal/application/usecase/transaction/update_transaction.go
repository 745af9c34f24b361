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

// UpdateTransactionInput represents the input for transaction update.
// The transaction keeps its id; a zero Draft.Date keeps the stored date.
type UpdateTransactionInput struct {
	Actor         Actor
	TransactionID uuid.UUID
	Draft         TransactionDraft
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction entity.Transaction
	Ledger      ledger.State
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	service *Service
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(service *Service) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		service: service,
	}
}

// Execute replaces a transaction in the caller's ledger.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	var output *UpdateTransactionOutput
	err := uc.service.WithLedger(ctx, input.Actor.UserID, func(l *Ledger) error {
		existing, _, ok := l.State().Find(input.TransactionID)
		if !ok {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}

		draft := input.Draft
		if draft.Date.IsZero() {
			draft.Date = existing.Date
		}

		txn, err := uc.service.build(ctx, input.Actor, existing.ID, draft)
		if err != nil {
			return err
		}

		state, err := l.Update(ctx, txn)
		if err != nil && !domainerror.IsStorageError(err) {
			return err
		}
		output = &UpdateTransactionOutput{Transaction: txn, Ledger: state}
		if err != nil {
			return err
		}

		uc.service.publish(ctx, adapter.LedgerEventUpdated, input.Actor.UserID, txn, state)
		return nil
	})
	return output, err
}

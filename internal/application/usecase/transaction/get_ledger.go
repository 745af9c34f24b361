// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// GetLedgerUseCase returns the caller's full ledger.
type GetLedgerUseCase struct {
	service *Service
}

// NewGetLedgerUseCase creates a new GetLedgerUseCase instance.
func NewGetLedgerUseCase(service *Service) *GetLedgerUseCase {
	return &GetLedgerUseCase{
		service: service,
	}
}

// Execute loads the ledger of userID.
func (uc *GetLedgerUseCase) Execute(ctx context.Context, userID uuid.UUID) (ledger.State, error) {
	return uc.service.Snapshot(ctx, userID)
}

// Package admin contains administrator-only account management use cases.
package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// LedgerRemover deletes a user's stored ledger.
type LedgerRemover interface {
	DeleteLedger(ctx context.Context, userID uuid.UUID) error
}

// DeleteUserUseCase removes an account together with its ledger and custom categories.
type DeleteUserUseCase struct {
	userRepo   adapter.UserRepository
	ledgers    LedgerRemover
	categories adapter.CustomCategoryStore
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(
	userRepo adapter.UserRepository,
	ledgers LedgerRemover,
	categories adapter.CustomCategoryStore,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		ledgers:    ledgers,
		categories: categories,
	}
}

// Execute performs the deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	if userID == entity.AdminUserID {
		return adminImmutable()
	}

	if _, err := findUser(ctx, uc.userRepo, userID); err != nil {
		return err
	}

	if err := uc.ledgers.DeleteLedger(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete ledger: %w", err)
	}
	if err := uc.categories.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete custom categories: %w", err)
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

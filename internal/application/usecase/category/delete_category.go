// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for removing a custom entry.
type DeleteCategoryInput struct {
	UserID uuid.UUID
	Kind   entity.CategoryKind
	Name   string
}

// DeleteCategoryUseCase handles removing a custom catalog entry.
// Built-in entries cannot be removed. Existing transactions keep their values.
type DeleteCategoryUseCase struct {
	store adapter.CustomCategoryStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.CustomCategoryStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		store: store,
	}
}

// Execute performs the removal.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if !input.Kind.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"kind must be one of receiver, recipient, expense or income",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	custom, err := uc.store.Get(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to load custom categories: %w", err)
	}

	if !custom.Remove(input.Kind, input.Name) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"custom category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if err := uc.store.Save(ctx, input.UserID, custom); err != nil {
		return fmt.Errorf("failed to save custom categories: %w", err)
	}
	return nil
}

// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing the catalog.
type ListCategoriesInput struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// ListCategoriesOutput represents the merged catalog and the user's own additions.
type ListCategoriesOutput struct {
	Catalog entity.Catalog
	Custom  entity.CustomCategories
}

// ListCategoriesUseCase handles listing the catalog available to a user.
type ListCategoriesUseCase struct {
	store adapter.CustomCategoryStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.CustomCategoryStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		store: store,
	}
}

// Execute returns the built-in catalog merged with the user's custom entries.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	custom, err := uc.store.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}

	catalog := entity.NewCatalog(custom)
	if input.IsAdmin {
		catalog = catalog.ForAdmin()
	}

	return &ListCategoriesOutput{
		Catalog: catalog,
		Custom:  custom,
	}, nil
}

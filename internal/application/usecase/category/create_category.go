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

// MaxCategoryNameLength is the maximum allowed length for custom entries.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for adding a custom entry.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Kind   entity.CategoryKind
	Name   string
}

// CreateCategoryOutput represents the output of adding a custom entry.
type CreateCategoryOutput struct {
	Name    string // Normalized name
	Added   bool   // False when the name was already built-in or present
	Custom  entity.CustomCategories
	Catalog entity.Catalog
}

// CreateCategoryUseCase handles adding a custom catalog entry.
type CreateCategoryUseCase struct {
	store adapter.CustomCategoryStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.CustomCategoryStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		store: store,
	}
}

// Execute trims and upper-cases the name and appends it to the chosen list.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryKind,
			"kind must be one of receiver, recipient, expense or income",
			domainerror.ErrInvalidCategoryKind,
		)
	}

	name := entity.NormalizeCategoryName(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	custom, err := uc.store.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom categories: %w", err)
	}

	added := custom.Add(input.Kind, name)
	if added {
		if err := uc.store.Save(ctx, input.UserID, custom); err != nil {
			return nil, fmt.Errorf("failed to save custom categories: %w", err)
		}
	}

	return &CreateCategoryOutput{
		Name:    name,
		Added:   added,
		Custom:  custom,
		Catalog: entity.NewCatalog(custom),
	}, nil
}

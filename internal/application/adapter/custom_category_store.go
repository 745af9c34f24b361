// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CustomCategoryStore persists a user's additions to the built-in catalog.
type CustomCategoryStore interface {
	// Get returns the custom categories for userID, empty if none are stored.
	Get(ctx context.Context, userID uuid.UUID) (entity.CustomCategories, error)

	// Save replaces the custom categories for userID.
	Save(ctx context.Context, userID uuid.UUID, categories entity.CustomCategories) error

	// Delete removes the custom categories for userID.
	Delete(ctx context.Context, userID uuid.UUID) error
}

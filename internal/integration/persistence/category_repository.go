// Package persistence implements the store contracts on top of gorm. The same
// code serves the postgres and sqlite backends.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// customCategoryRepository implements the adapter.CustomCategoryStore interface.
type customCategoryRepository struct {
	db *gorm.DB
}

// NewCustomCategoryRepository creates a new custom category repository instance.
func NewCustomCategoryRepository(db *gorm.DB) adapter.CustomCategoryStore {
	return &customCategoryRepository{
		db: db,
	}
}

// Get returns the user's custom categories, empty when none are stored.
func (r *customCategoryRepository) Get(ctx context.Context, userID uuid.UUID) (entity.CustomCategories, error) {
	var row model.CustomCategoryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.NewCustomCategories(), nil
		}
		return entity.CustomCategories{}, result.Error
	}
	return row.ToEntity(), nil
}

// Save upserts the user's custom categories.
func (r *customCategoryRepository) Save(ctx context.Context, userID uuid.UUID, categories entity.CustomCategories) error {
	row := model.CustomCategoryFromEntity(userID, categories)
	row.UpdatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"receivers", "recipients", "expenses", "income", "updated_at"}),
		}).
		Create(row).Error
}

// Delete removes the user's custom categories.
func (r *customCategoryRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomCategoryModel{}, "user_id = ?", userID).Error
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CustomCategoryModel stores a user's four custom category lists.
type CustomCategoryModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Receivers  []string  `gorm:"type:text;serializer:json"`
	Recipients []string  `gorm:"type:text;serializer:json"`
	Expenses   []string  `gorm:"type:text;serializer:json"`
	Income     []string  `gorm:"type:text;serializer:json"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the CustomCategoryModel.
func (CustomCategoryModel) TableName() string {
	return "custom_categories"
}

// ToEntity converts the row to domain custom categories.
func (m *CustomCategoryModel) ToEntity() entity.CustomCategories {
	c := entity.NewCustomCategories()
	c.Receivers = append(c.Receivers, m.Receivers...)
	c.Recipients = append(c.Recipients, m.Recipients...)
	c.Expenses = append(c.Expenses, m.Expenses...)
	c.Income = append(c.Income, m.Income...)
	return c
}

// CustomCategoryFromEntity creates a CustomCategoryModel for userID.
func CustomCategoryFromEntity(userID uuid.UUID, c entity.CustomCategories) *CustomCategoryModel {
	return &CustomCategoryModel{
		UserID:     userID,
		Receivers:  c.Receivers,
		Recipients: c.Recipients,
		Expenses:   c.Expenses,
		Income:     c.Income,
	}
}

// All returns every model the SQL backends migrate.
func All() []any {
	return []any{&UserModel{}, &TransactionModel{}, &CustomCategoryModel{}}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents one row of a user's ledger. Ids are unique per
// user. Position keeps the ledger order, 0 being the newest entry.
type TransactionModel struct {
	UserID        uuid.UUID         `gorm:"type:uuid;primaryKey;index:idx_transactions_user_position,priority:1"`
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Position      int               `gorm:"not null;index:idx_transactions_user_position,priority:2"`
	Type          string            `gorm:"type:varchar(10);not null"`
	Amount        decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	Person        string            `gorm:"type:varchar(100);not null"`
	Category      string            `gorm:"type:varchar(100);not null"`
	PaymentMethod string            `gorm:"type:varchar(50);not null"`
	Description   string            `gorm:"type:varchar(255)"`
	Date          time.Time         `gorm:"not null"`
	FoodItems     []entity.FoodItem `gorm:"type:text;serializer:json"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() entity.Transaction {
	return entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		Person:        m.Person,
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		Description:   m.Description,
		Date:          m.Date.UTC(),
		FoodItems:     m.FoodItems,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(userID uuid.UUID, position int, t entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            t.ID,
		UserID:        userID,
		Position:      position,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Person:        t.Person,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		Date:          t.Date,
		FoodItems:     t.FoodItems,
	}
}

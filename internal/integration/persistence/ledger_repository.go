// Package persistence implements the store contracts on top of gorm. The same
// code serves the postgres and sqlite backends.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

const insertBatchSize = 200

// ledgerRepository implements the adapter.LedgerStore interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerStore {
	return &ledgerRepository{
		db: db,
	}
}

// Load reads the user's rows in ledger order and recomputes the aggregates.
func (r *ledgerRepository) Load(ctx context.Context, userID uuid.UUID) (ledger.State, error) {
	var rows []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&rows)
	if result.Error != nil {
		return ledger.State{}, fmt.Errorf("failed to load transactions: %w", result.Error)
	}

	transactions := make([]entity.Transaction, len(rows))
	for i := range rows {
		transactions[i] = rows[i].ToEntity()
	}
	return ledger.Recompute(transactions), nil
}

// Save replaces every row of the user inside one database transaction.
func (r *ledgerRepository) Save(ctx context.Context, userID uuid.UUID, state ledger.State) error {
	rows := make([]*model.TransactionModel, len(state.Transactions))
	for i, t := range state.Transactions {
		rows[i] = model.TransactionFromEntity(userID, i, t)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.TransactionModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		return nil
	})
}

// Delete removes every row of the user.
func (r *ledgerRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return nil
}

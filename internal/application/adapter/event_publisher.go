// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// LedgerEventType names a ledger change.
type LedgerEventType string

const (
	LedgerEventAdded   LedgerEventType = "transaction.added"
	LedgerEventUpdated LedgerEventType = "transaction.updated"
	LedgerEventDeleted LedgerEventType = "transaction.deleted"
)

// LedgerEvent describes a committed ledger change.
type LedgerEvent struct {
	Type          LedgerEventType    `json:"type"`
	UserID        uuid.UUID          `json:"userId"`
	Transaction   entity.Transaction `json:"transaction"`
	Balance       string             `json:"balance"`
	TotalIncome   string             `json:"totalIncome"`
	TotalExpenses string             `json:"totalExpenses"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

// EventPublisher delivers ledger events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
}

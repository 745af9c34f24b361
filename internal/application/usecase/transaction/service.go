// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// Service opens ledger sessions and runs them one at a time per user.
type Service struct {
	store      adapter.LedgerStore
	categories adapter.CustomCategoryStore
	publisher  adapter.EventPublisher

	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

// userLock is dropped from Service.locks once no session holds or waits for it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a new Service instance.
func NewService(
	store adapter.LedgerStore,
	categories adapter.CustomCategoryStore,
	publisher adapter.EventPublisher,
) *Service {
	return &Service{
		store:      store,
		categories: categories,
		publisher:  publisher,
		locks:      make(map[uuid.UUID]*userLock),
	}
}

func (s *Service) lock(userID uuid.UUID) *userLock {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return l
}

func (s *Service) unlock(userID uuid.UUID, l *userLock) {
	l.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, userID)
	}
}

// WithLedger opens the ledger of userID and runs fn while holding the user's
// lock, so no other session for that user interleaves with it.
func (s *Service) WithLedger(ctx context.Context, userID uuid.UUID, fn func(*Ledger) error) error {
	l := s.lock(userID)
	defer s.unlock(userID, l)

	session, err := OpenLedger(ctx, s.store, userID)
	if err != nil {
		return err
	}
	return fn(session)
}

// Snapshot returns the current ledger of userID.
func (s *Service) Snapshot(ctx context.Context, userID uuid.UUID) (ledger.State, error) {
	var state ledger.State
	err := s.WithLedger(ctx, userID, func(l *Ledger) error {
		state = l.State()
		return nil
	})
	return state, err
}

// DeleteLedger removes the stored ledger of userID.
func (s *Service) DeleteLedger(ctx context.Context, userID uuid.UUID) error {
	l := s.lock(userID)
	defer s.unlock(userID, l)

	return s.store.Delete(ctx, userID)
}

// Catalog returns the built-in catalog merged with the user's custom categories.
func (s *Service) Catalog(ctx context.Context, userID uuid.UUID) (entity.Catalog, error) {
	custom, err := s.categories.Get(ctx, userID)
	if err != nil {
		return entity.Catalog{}, fmt.Errorf("failed to load custom categories: %w", err)
	}
	return entity.NewCatalog(custom), nil
}

func (s *Service) publish(ctx context.Context, eventType adapter.LedgerEventType, userID uuid.UUID, txn entity.Transaction, state ledger.State) {
	event := adapter.LedgerEvent{
		Type:          eventType,
		UserID:        userID,
		Transaction:   txn,
		Balance:       state.Balance.StringFixed(2),
		TotalIncome:   state.TotalIncome.StringFixed(2),
		TotalExpenses: state.TotalExpenses.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger event",
			"type", eventType,
			"userID", userID,
			"transactionID", txn.ID,
			"error", err,
		)
	}
}

// TransactionDraft carries the caller-supplied fields of a transaction before
// boundary checks and defaults are applied.
type TransactionDraft struct {
	Type          entity.TransactionType
	Amount        *decimal.Decimal // nil derives the amount from FoodItems
	Person        string
	Category      string
	PaymentMethod string
	Description   string
	Date          time.Time
	FoodItems     []entity.FoodItem
}

// Actor identifies the caller of a ledger operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// build normalizes draft and checks it against the caller's catalog.
func (s *Service) build(ctx context.Context, actor Actor, id uuid.UUID, draft TransactionDraft) (entity.Transaction, error) {
	catalog, err := s.Catalog(ctx, actor.UserID)
	if err != nil {
		return entity.Transaction{}, err
	}
	if actor.IsAdmin {
		catalog = catalog.ForAdmin()
	}

	txn := entity.Transaction{
		ID:            id,
		Type:          draft.Type,
		Person:        strings.TrimSpace(draft.Person),
		Category:      strings.TrimSpace(draft.Category),
		PaymentMethod: strings.TrimSpace(draft.PaymentMethod),
		Description:   strings.TrimSpace(draft.Description),
		Date:          entity.Timestamp(draft.Date),
		FoodItems:     draft.FoodItems,
	}
	if txn.PaymentMethod == "" {
		txn.PaymentMethod = entity.DefaultPaymentMethod
	}
	if draft.Date.IsZero() {
		txn.Date = entity.Timestamp(time.Now())
	}

	switch {
	case draft.Amount != nil:
		txn.Amount = *draft.Amount
	case txn.IsFoodItemized():
		txn.Amount = entity.FoodItemsTotal(draft.FoodItems)
	default:
		return entity.Transaction{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount is required",
			domainerror.ErrMissingTransactionField,
		)
	}

	if !txn.Type.IsValid() {
		return entity.Transaction{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if txn.Category != "" && !catalog.HasCategory(txn.Type, txn.Category) {
		return entity.Transaction{}, domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("category %q is not available for %s transactions", txn.Category, txn.Type),
			domainerror.ErrUnknownCategory,
		)
	}

	if !catalog.HasPaymentMethod(txn.PaymentMethod) {
		return entity.Transaction{}, domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownPaymentMethod,
			fmt.Sprintf("payment method %q is not supported", txn.PaymentMethod),
			domainerror.ErrUnknownPaymentMethod,
		)
	}

	if actor.IsAdmin && txn.Person != "" && !slices.Contains(catalog.Counterparties(txn.Type), txn.Person) {
		return entity.Transaction{}, domainerror.NewTransactionError(
			domainerror.ErrCodeCounterpartyNotAllowed,
			fmt.Sprintf("%q is not a counterparty for %s transactions", txn.Person, txn.Type),
			domainerror.ErrCounterpartyNotAllowed,
		)
	}

	return txn, nil
}

// Package redisstore keeps each ledger as one JSON document in Redis, the
// shape a browser would keep in local storage.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

const (
	ledgerKeyPrefix   = "budgetState_"
	categoryKeyPrefix = "customCategories_"
)

// LedgerKey returns the key holding the ledger document of userID.
func LedgerKey(userID uuid.UUID) string {
	return ledgerKeyPrefix + userID.String()
}

func categoryKey(userID uuid.UUID) string {
	return categoryKeyPrefix + userID.String()
}

type ledgerStore struct {
	client redis.UniversalClient
}

// NewLedgerStore creates a ledger store backed by client.
func NewLedgerStore(client redis.UniversalClient) adapter.LedgerStore {
	return &ledgerStore{client: client}
}

// Load reads the document and recomputes the aggregates from its transactions,
// so a hand-edited or stale document cannot break the ledger invariants.
func (s *ledgerStore) Load(ctx context.Context, userID uuid.UUID) (ledger.State, error) {
	raw, err := s.client.Get(ctx, LedgerKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ledger.Empty(), nil
	}
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to read ledger document: %w", err)
	}

	var doc ledger.State
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ledger.State{}, fmt.Errorf("failed to decode ledger document: %w", err)
	}
	return ledger.Recompute(doc.Transactions), nil
}

func (s *ledgerStore) Save(ctx context.Context, userID uuid.UUID, state ledger.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode ledger document: %w", err)
	}
	if err := s.client.Set(ctx, LedgerKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write ledger document: %w", err)
	}
	return nil
}

func (s *ledgerStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, LedgerKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete ledger document: %w", err)
	}
	return nil
}

type categoryStore struct {
	client redis.UniversalClient
}

// NewCustomCategoryStore creates a custom category store backed by client.
func NewCustomCategoryStore(client redis.UniversalClient) adapter.CustomCategoryStore {
	return &categoryStore{client: client}
}

func (s *categoryStore) Get(ctx context.Context, userID uuid.UUID) (entity.CustomCategories, error) {
	raw, err := s.client.Get(ctx, categoryKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewCustomCategories(), nil
	}
	if err != nil {
		return entity.CustomCategories{}, fmt.Errorf("failed to read custom categories: %w", err)
	}

	c := entity.NewCustomCategories()
	if err := json.Unmarshal(raw, &c); err != nil {
		return entity.CustomCategories{}, fmt.Errorf("failed to decode custom categories: %w", err)
	}
	return c, nil
}

func (s *categoryStore) Save(ctx context.Context, userID uuid.UUID, categories entity.CustomCategories) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode custom categories: %w", err)
	}
	return s.client.Set(ctx, categoryKey(userID), raw, 0).Err()
}

func (s *categoryStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, categoryKey(userID)).Err()
}

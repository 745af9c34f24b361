package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

type categoryStore struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]entity.CustomCategories
}

// NewCustomCategoryStore creates an empty in-memory custom category store.
func NewCustomCategoryStore() adapter.CustomCategoryStore {
	return &categoryStore{
		categories: make(map[uuid.UUID]entity.CustomCategories),
	}
}

func cloneCategories(c entity.CustomCategories) entity.CustomCategories {
	out := entity.NewCustomCategories()
	out.Receivers = append(out.Receivers, c.Receivers...)
	out.Recipients = append(out.Recipients, c.Recipients...)
	out.Expenses = append(out.Expenses, c.Expenses...)
	out.Income = append(out.Income, c.Income...)
	return out
}

func (s *categoryStore) Get(_ context.Context, userID uuid.UUID) (entity.CustomCategories, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[userID]
	if !ok {
		return entity.NewCustomCategories(), nil
	}
	return cloneCategories(c), nil
}

func (s *categoryStore) Save(_ context.Context, userID uuid.UUID, categories entity.CustomCategories) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories[userID] = cloneCategories(categories)
	return nil
}

func (s *categoryStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, userID)
	return nil
}

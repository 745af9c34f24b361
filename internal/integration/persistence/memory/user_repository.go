package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() adapter.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]entity.User),
	}
}

func copyUser(u entity.User) *entity.User {
	u.AccessibleNames = slices.Clone(u.AccessibleNames)
	return &u
}

func (r *userRepository) usernameTaken(username string, except uuid.UUID) bool {
	for id, u := range r.users {
		if id != except && u.Username == username {
			return true
		}
	}
	return false
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.usernameTaken(user.Username, uuid.Nil) {
		return domainerror.ErrUsernameTaken
	}
	r.users[user.ID] = *copyUser(*user)
	return nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return domainerror.ErrUsernameTaken
	}
	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *copyUser(*user)
	return nil
}

func (r *userRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domainerror.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *userRepository) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.usernameTaken(username, uuid.Nil), nil
}

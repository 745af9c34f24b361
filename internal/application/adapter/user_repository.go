// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user account persistence.
// The built-in administrator is never stored here.
type UserRepository interface {
	// Create stores a new user. Returns domainerror.ErrUsernameTaken if the username exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. Returns domainerror.ErrUserNotFound if missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username. Returns domainerror.ErrUserNotFound if missing.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns every account ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Update replaces an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

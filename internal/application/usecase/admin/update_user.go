// Package admin contains administrator-only account management use cases.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateUserInput represents the input for editing an account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID    uuid.UUID
	Username  *string
	Password  *string
	IsBlocked *bool
}

// UpdateUserUseCase handles account edits by an administrator.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	admin           auth.AdminAccount
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	admin auth.AdminAccount,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		admin:           admin,
	}
}

// Execute performs the update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*entity.User, error) {
	if input.UserID == entity.AdminUserID {
		return nil, adminImmutable()
	}

	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if err := auth.ValidateUsername(username); err != nil {
			return nil, err
		}
		if uc.admin.Enabled() && username == uc.admin.Username {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeUsernameTaken, "username already exists", domainerror.ErrUsernameTaken)
		}
		user.Username = username
	}

	if input.Password != nil {
		if err := uc.passwordService.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), domainerror.ErrWeakPassword)
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if input.IsBlocked != nil {
		user.IsBlocked = *input.IsBlocked
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrUsernameTaken) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeUsernameTaken, "username already exists", domainerror.ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func findUser(ctx context.Context, userRepo adapter.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user not found", domainerror.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func adminImmutable() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeAdminAccountLocked,
		"the administrator account cannot be modified",
		domainerror.ErrAdminAccountImmutable,
	)
}

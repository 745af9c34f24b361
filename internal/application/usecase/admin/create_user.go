// Package admin contains administrator-only account management use cases.
package admin

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateUserInput represents the input for creating an account.
type CreateUserInput struct {
	Username string
	Password string
}

// CreateUserUseCase handles account creation by an administrator.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	admin           auth.AdminAccount
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	admin auth.AdminAccount,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		admin:           admin,
	}
}

// Execute applies the same rules as self-registration.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	return auth.CreateAccount(ctx, uc.userRepo, uc.passwordService, uc.admin, input.Username, input.Password)
}

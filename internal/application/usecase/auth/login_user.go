// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	admin           AdminAccount
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	admin AdminAccount,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		admin:           admin,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := strings.TrimSpace(input.Username)

	user, err := uc.authenticate(ctx, username, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (uc *LoginUserUseCase) authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	// Administrator bypasses the account store
	if uc.admin.Enabled() && username == uc.admin.Username {
		if err := uc.passwordService.VerifyPassword(uc.admin.PasswordHash, password); err != nil {
			return nil, invalidCredentials()
		}
		return uc.admin.User(), nil
	}

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, invalidCredentials()
	}

	if user.IsBlocked {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountBlocked,
			"your account has been blocked",
			domainerror.ErrAccountBlocked,
		)
	}

	return user, nil
}

// invalidCredentials does not reveal whether the username exists.
func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}

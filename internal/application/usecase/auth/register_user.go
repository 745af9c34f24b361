// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxUsernameLength is the maximum allowed length for usernames.
const MaxUsernameLength = 50

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	admin           AdminAccount
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	admin AdminAccount,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		admin:           admin,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	user, err := CreateAccount(ctx, uc.userRepo, uc.passwordService, uc.admin, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Username, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// CreateAccount validates the credentials and stores a new regular user.
// It is shared by self-registration and administrator-created accounts.
func CreateAccount(
	ctx context.Context,
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	admin AdminAccount,
	username string,
	password string,
) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	if err := passwordService.ValidatePasswordStrength(password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	if admin.Enabled() && username == admin.Username {
		return nil, usernameTaken()
	}

	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, usernameTaken()
	}

	passwordHash, err := passwordService.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(username, passwordHash)
	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrUsernameTaken) {
			return nil, usernameTaken()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ValidateUsername checks that username is non-empty, short enough and has no whitespace.
func ValidateUsername(username string) error {
	if username == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username is required",
			domainerror.ErrInvalidUsername,
		)
	}
	if len(username) > MaxUsernameLength || strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUsername,
			fmt.Sprintf("username must be at most %d characters without spaces", MaxUsernameLength),
			domainerror.ErrInvalidUsername,
		)
	}
	return nil
}

func usernameTaken() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeUsernameTaken,
		"username already exists",
		domainerror.ErrUsernameTaken,
	)
}

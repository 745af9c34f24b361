// Package auth contains authentication-related use cases.
package auth

import (
	"slices"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// AdminAccount is the configured administrator. It is checked before the
// account store and never stored in it.
type AdminAccount struct {
	Username        string
	PasswordHash    string
	AccessibleNames []string
}

// NewAdminAccount hashes password with passwordService. An empty username
// disables the administrator login.
func NewAdminAccount(passwordService adapter.PasswordService, username, password string, accessibleNames []string) (AdminAccount, error) {
	if username == "" {
		return AdminAccount{}, nil
	}
	hash, err := passwordService.HashPassword(password)
	if err != nil {
		return AdminAccount{}, err
	}
	if len(accessibleNames) == 0 {
		accessibleNames = entity.SpecialPeople
	}
	return AdminAccount{
		Username:        username,
		PasswordHash:    hash,
		AccessibleNames: slices.Clone(accessibleNames),
	}, nil
}

// Enabled reports whether an administrator is configured.
func (a AdminAccount) Enabled() bool {
	return a.Username != ""
}

// User returns the administrator identity.
func (a AdminAccount) User() *entity.User {
	return entity.NewAdminUser(a.Username, a.AccessibleNames)
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// AdminUserID is the fixed identity of the built-in administrator. It never
// appears in the account store.
var AdminUserID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("expense-tracker:admin"))

// User represents an account in the Expense Tracker system.
type User struct {
	ID              uuid.UUID
	Username        string
	PasswordHash    string
	IsAdmin         bool
	IsBlocked       bool
	AccessibleNames []string // Counterparties the admin may report on
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new regular, unblocked User.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewAdminUser creates the distinguished administrator identity.
func NewAdminUser(username string, accessibleNames []string) *User {
	return &User{
		ID:              AdminUserID,
		Username:        username,
		IsAdmin:         true,
		AccessibleNames: slices.Clone(accessibleNames),
	}
}

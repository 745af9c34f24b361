// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserModel represents the user table in the database.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	IsBlocked       bool      `gorm:"default:false"`
	AccessibleNames []string  `gorm:"type:text;serializer:json"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:              m.ID,
		Username:        m.Username,
		PasswordHash:    m.PasswordHash,
		IsBlocked:       m.IsBlocked,
		AccessibleNames: m.AccessibleNames,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:              user.ID,
		Username:        user.Username,
		PasswordHash:    user.PasswordHash,
		IsBlocked:       user.IsBlocked,
		AccessibleNames: user.AccessibleNames,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

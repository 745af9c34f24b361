package dto

import "github.com/expense-tracker/backend/internal/domain/entity"

// CreateUserRequest represents the request body for creating an account as admin.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest represents a partial account update. Omitted fields are kept.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	IsBlocked *bool   `json:"is_blocked,omitempty"`
}

// UserListResponse represents the admin user list.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserListResponse converts users to a UserListResponse DTO.
func ToUserListResponse(users []*entity.User) UserListResponse {
	resp := UserListResponse{Users: make([]UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = ToUserResponse(u)
	}
	return resp
}

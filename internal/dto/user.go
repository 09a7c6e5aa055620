package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a login.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,role"`
	BranchID *int64 `json:"branchID"` // required for branch managers, validated in the service
}

// UpdateUserRequest defines the data allowed for updating a login.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	BranchID *int64  `json:"branchID"`
}

// UserResponse defines the data returned for a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	UserID    int64      `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	BranchID  *int64     `json:"branchID,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Role:      string(u.Role),
		BranchID:  u.BranchID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to response DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}

package dto

import "github.com/pvfc/payroll_backoffice_app/internal/core/domain"

// LoginRequest carries the credentials posted to /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToLoginResponse builds the login payload from the issued token and user.
func ToLoginResponse(token string, user *domain.User) LoginResponse {
	return LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}
}

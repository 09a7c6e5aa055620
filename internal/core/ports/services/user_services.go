package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// UserReaderSvc defines read operations for user accounts
type UserReaderSvc interface {
	// GetUserByID retrieves a user by its unique identifier.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user accounts
type UserWriterSvc interface {
	// CreateUser creates a login with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates a login's details.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a login. The caller cannot delete itself.
	DeleteUser(ctx context.Context, actor domain.Principal, userID int64) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

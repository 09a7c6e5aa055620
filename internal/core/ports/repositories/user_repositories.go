package repositories

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, for login.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user and returns it with its assigned ID.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID int64) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

package repositories

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// BranchReader defines read operations for branch data
type BranchReader interface {
	// FindBranchByID retrieves a branch by its unique identifier.
	FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error)

	// ListBranches retrieves all branches ordered by code.
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data
type BranchWriter interface {
	// SaveBranch persists a new branch and returns it with its assigned ID.
	SaveBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error)

	// UpdateBranch updates an existing branch's details.
	UpdateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error)

	// DeleteBranch removes a branch.
	DeleteBranch(ctx context.Context, branchID int64) error
}

// BranchRepositoryFacade combines all branch-related repository interfaces
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}

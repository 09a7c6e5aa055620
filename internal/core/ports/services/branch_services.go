package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BranchSvcFacade manages branch offices.
type BranchSvcFacade interface {
	// GetBranchByID retrieves a branch by its unique identifier.
	GetBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error)

	// ListBranches retrieves all branches.
	ListBranches(ctx context.Context) ([]domain.Branch, error)

	// CreateBranch creates a branch.
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error)

	// UpdateBranch updates a branch's details.
	UpdateBranch(ctx context.Context, branchID int64, req dto.UpdateBranchRequest) (*domain.Branch, error)

	// DeleteBranch removes a branch.
	DeleteBranch(ctx context.Context, branchID int64) error
}

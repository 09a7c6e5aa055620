package services

import (
	"context"
	"strings"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BranchService manages branch offices.
type BranchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

func (s *BranchService) GetBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	return s.branchRepo.FindBranchByID(ctx, branchID)
}

func (s *BranchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.ListBranches(ctx)
}

func (s *BranchService) CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error) {
	branch := domain.Branch{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
		Area: strings.TrimSpace(req.Area),
	}
	if branch.Code == "" || branch.Name == "" || branch.Area == "" {
		return nil, apperrors.NewValidationError("code, name and area are required")
	}

	saved, err := s.branchRepo.SaveBranch(ctx, branch)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "branch created", slog.Int64("branch_id", saved.BranchID), slog.String("code", saved.Code))
	return saved, nil
}

func (s *BranchService) UpdateBranch(ctx context.Context, branchID int64, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		branch.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		branch.Name = strings.TrimSpace(*req.Name)
	}
	if req.Area != nil {
		branch.Area = strings.TrimSpace(*req.Area)
	}
	if branch.Code == "" || branch.Name == "" || branch.Area == "" {
		return nil, apperrors.NewValidationError("code, name and area cannot be empty")
	}

	return s.branchRepo.UpdateBranch(ctx, *branch)
}

func (s *BranchService) DeleteBranch(ctx context.Context, branchID int64) error {
	if err := s.branchRepo.DeleteBranch(ctx, branchID); err != nil {
		return err
	}
	s.LogInfo(ctx, "branch deleted", slog.Int64("branch_id", branchID))
	return nil
}

package services

import (
	"context"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BonusService manages per-branch bonus sheets.
type BonusService struct {
	BaseService
	bonusRepo  portsrepo.BonusRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

func NewBonusService(bonusRepo portsrepo.BonusRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) *BonusService {
	return &BonusService{bonusRepo: bonusRepo, branchRepo: branchRepo}
}

func (s *BonusService) GetBonusRun(ctx context.Context, actor domain.Principal, params dto.GetBonusRunParams) (*domain.BonusRun, []domain.BonusLine, error) {
	if !actor.OwnsBranch(params.BranchID) {
		return nil, nil, apperrors.ErrForbidden
	}
	if _, err := s.branchRepo.FindBranchByID(ctx, params.BranchID); err != nil {
		return nil, nil, apperrors.NewValidationError("branch does not exist")
	}

	month, err := parseMonth(params.BonusMonth, "month")
	if err != nil {
		return nil, nil, err
	}

	run, err := s.bonusRepo.GetOrCreateRun(ctx, params.BranchID, month, nil)
	if err != nil {
		return nil, nil, err
	}
	lines, err := s.bonusRepo.ListLines(ctx, run.BonusRunID)
	if err != nil {
		return nil, nil, err
	}
	return run, lines, nil
}

func (s *BonusService) SaveBonusRun(ctx context.Context, actor domain.Principal, req dto.SaveBonusRunRequest) (*domain.BonusRun, []domain.BonusLine, error) {
	if !actor.OwnsBranch(req.BranchID) {
		return nil, nil, apperrors.ErrForbidden
	}
	if _, err := s.branchRepo.FindBranchByID(ctx, req.BranchID); err != nil {
		return nil, nil, apperrors.NewValidationError("branch does not exist")
	}

	month, err := parseMonth(req.BonusMonth, "month")
	if err != nil {
		return nil, nil, err
	}

	lines := make([]domain.BonusLine, len(req.Lines))
	for i, l := range req.Lines {
		if l.Salary.IsNegative() || l.Month13.IsNegative() || l.Month14.IsNegative() || l.Month15.IsNegative() {
			return nil, nil, apperrors.NewValidationError("bonus amounts cannot be negative")
		}
		lines[i] = domain.BonusLine{
			StaffID: l.StaffID,
			Salary:  l.Salary,
			Month13: l.Month13,
			Month14: l.Month14,
			Month15: l.Month15,
		}
	}

	run, err := s.bonusRepo.GetOrCreateRun(ctx, req.BranchID, month, req.Notes)
	if err != nil {
		return nil, nil, err
	}
	if err := s.bonusRepo.UpsertLines(ctx, run.BonusRunID, lines); err != nil {
		return nil, nil, err
	}

	saved, err := s.bonusRepo.ListLines(ctx, run.BonusRunID)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "bonus run saved",
		slog.Int64("bonus_run_id", run.BonusRunID),
		slog.Int64("branch_id", req.BranchID),
		slog.Int("lines", len(lines)),
		slog.Int64("saved_by", actor.UserID))
	return run, saved, nil
}

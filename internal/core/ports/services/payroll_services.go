package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// PayrollSvcFacade computes the payroll sheet.
type PayrollSvcFacade interface {
	// ListPayroll returns one computed line per active staff member visible
	// to the actor, with derived totals filled in.
	ListPayroll(ctx context.Context, actor domain.Principal, params dto.ListPayrollParams) ([]domain.PayrollRow, error)
}

// BonusSvcFacade manages per-branch bonus sheets.
type BonusSvcFacade interface {
	// GetBonusRun returns the run for a branch and month, creating an empty
	// one when none exists, together with its lines.
	GetBonusRun(ctx context.Context, actor domain.Principal, params dto.GetBonusRunParams) (*domain.BonusRun, []domain.BonusLine, error)

	// SaveBonusRun upserts a branch bonus sheet and its lines.
	SaveBonusRun(ctx context.Context, actor domain.Principal, req dto.SaveBonusRunRequest) (*domain.BonusRun, []domain.BonusLine, error)
}

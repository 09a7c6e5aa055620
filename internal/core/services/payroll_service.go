package services

import (
	"context"
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/payroll"
)

// PayrollService computes the payroll sheet from staff, balances and payables.
type PayrollService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepositoryFacade
}

func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade) *PayrollService {
	return &PayrollService{payrollRepo: payrollRepo}
}

func (s *PayrollService) ListPayroll(ctx context.Context, actor domain.Principal, params dto.ListPayrollParams) ([]domain.PayrollRow, error) {
	branchID, err := scopedBranchID(actor, params.BranchID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if params.Date != nil && *params.Date != "" {
		date, err = parseDate(*params.Date, "date")
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.payrollRepo.ListPayrollRows(ctx, branchID, date)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		payroll.ComputeTotals(&rows[i])
	}
	return rows, nil
}

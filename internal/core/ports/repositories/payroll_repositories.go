package repositories

import (
	"context"
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// PayrollReader assembles payroll source rows. The repository joins staff,
// balances and open payables; derived totals are the service's job.
type PayrollReader interface {
	// ListPayrollRows retrieves one row per active staff member, optionally
	// scoped to one branch, with deduction figures as of the given date.
	ListPayrollRows(ctx context.Context, branchID *int64, date time.Time) ([]domain.PayrollRow, error)
}

// PayrollRepositoryFacade is the payroll repository surface.
type PayrollRepositoryFacade interface {
	PayrollReader
}

package repositories

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// BalanceReader defines read operations for staff balances and payables
type BalanceReader interface {
	// FindBalanceByStaffID retrieves the balance row of one employee.
	FindBalanceByStaffID(ctx context.Context, staffID int64) (*domain.StaffBalance, error)

	// ListBalances retrieves balance rows, optionally scoped to one branch.
	ListBalances(ctx context.Context, branchID *int64) ([]domain.StaffBalance, error)

	// ListPayables retrieves payable entries, optionally scoped to one
	// employee or one branch.
	ListPayables(ctx context.Context, staffID *int64, branchID *int64) ([]domain.Payable, error)
}

// BalanceWriter defines write operations for staff balances and payables
type BalanceWriter interface {
	// UpdateBalance overwrites the balance columns of one employee's row.
	UpdateBalance(ctx context.Context, balance domain.StaffBalance) (*domain.StaffBalance, error)

	// SavePayable opens a new payable schedule entry.
	SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error)
}

// BalanceRepositoryFacade combines all balance-related repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}

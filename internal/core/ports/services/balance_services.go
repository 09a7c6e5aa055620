package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BalanceSvcFacade manages staff deduction balances and payables.
type BalanceSvcFacade interface {
	// GetBalanceByStaffID retrieves one employee's balance row.
	GetBalanceByStaffID(ctx context.Context, actor domain.Principal, staffID int64) (*domain.StaffBalance, error)

	// ListBalances retrieves balance rows visible to the actor.
	ListBalances(ctx context.Context, actor domain.Principal, branchID *int64) ([]domain.StaffBalance, error)

	// UpdateBalance overwrites the provided balance columns. Admin only.
	UpdateBalance(ctx context.Context, actor domain.Principal, staffID int64, req dto.UpdateStaffBalanceRequest) (*domain.StaffBalance, error)

	// CreatePayable opens a payable schedule entry with a server-computed
	// per-month figure. Admin only.
	CreatePayable(ctx context.Context, actor domain.Principal, req dto.CreatePayableRequest) (*domain.Payable, error)

	// ListPayables retrieves payable entries visible to the actor.
	ListPayables(ctx context.Context, actor domain.Principal, staffID *int64, branchID *int64) ([]domain.Payable, error)
}

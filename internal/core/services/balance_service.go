package services

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/payroll"
)

// BalanceService manages staff deduction balances and payables.
type BalanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepositoryFacade
	staffRepo   portsrepo.StaffRepositoryFacade
}

func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, staffRepo portsrepo.StaffRepositoryFacade) *BalanceService {
	return &BalanceService{balanceRepo: balanceRepo, staffRepo: staffRepo}
}

func (s *BalanceService) GetBalanceByStaffID(ctx context.Context, actor domain.Principal, staffID int64) (*domain.StaffBalance, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}
	return s.balanceRepo.FindBalanceByStaffID(ctx, staffID)
}

func (s *BalanceService) ListBalances(ctx context.Context, actor domain.Principal, branchID *int64) ([]domain.StaffBalance, error) {
	branchID, err := scopedBranchID(actor, branchID)
	if err != nil {
		return nil, err
	}
	return s.balanceRepo.ListBalances(ctx, branchID)
}

// UpdateBalance overwrites the columns present in the request. Admin only:
// balances feed straight into payroll deductions.
func (s *BalanceService) UpdateBalance(ctx context.Context, actor domain.Principal, staffID int64, req dto.UpdateStaffBalanceRequest) (*domain.StaffBalance, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	balance, err := s.balanceRepo.FindBalanceByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if req.CBU != nil {
		balance.CBU = *req.CBU
	}
	if req.Cashbond != nil {
		balance.Cashbond = *req.Cashbond
	}
	if req.SalaryAdvance != nil {
		balance.SalaryAdvance = *req.SalaryAdvance
	}
	if req.MotorcycleLoan != nil {
		balance.MotorcycleLoan = *req.MotorcycleLoan
	}
	if req.SpecialAdvance != nil {
		balance.SpecialAdvance = *req.SpecialAdvance
	}
	if req.CashAdvance != nil {
		balance.CashAdvance = *req.CashAdvance
	}
	if req.OtherReceivable != nil {
		balance.OtherReceivable = *req.OtherReceivable
	}

	for _, v := range []struct {
		name  string
		value bool
	}{
		{"cbu", balance.CBU.IsNegative()},
		{"cashbond", balance.Cashbond.IsNegative()},
		{"salaryAdvance", balance.SalaryAdvance.IsNegative()},
		{"motorcycleLoan", balance.MotorcycleLoan.IsNegative()},
		{"specialAdvance", balance.SpecialAdvance.IsNegative()},
		{"cashAdvance", balance.CashAdvance.IsNegative()},
		{"otherReceivable", balance.OtherReceivable.IsNegative()},
	} {
		if v.value {
			return nil, apperrors.NewValidationError(v.name + " cannot be negative")
		}
	}

	updated, err := s.balanceRepo.UpdateBalance(ctx, *balance)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "staff balance updated",
		slog.Int64("staff_id", staffID),
		slog.Int64("updated_by", actor.UserID))
	return updated, nil
}

func (s *BalanceService) CreatePayable(ctx context.Context, actor domain.Principal, req dto.CreatePayableRequest) (*domain.Payable, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.NewValidationError("employee does not exist")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if req.TermMonths < 1 {
		return nil, apperrors.NewValidationError("term must be at least one month")
	}

	entryDate := time.Now()
	if req.EntryDate != nil && *req.EntryDate != "" {
		entryDate, err = parseDate(*req.EntryDate, "entryDate")
		if err != nil {
			return nil, err
		}
	}

	perMonth := payroll.PayableSchedule(req.Amount, req.TermMonths)
	payableEntry := domain.Payable{
		EmployeeID:  staff.StaffID,
		StaffName:   staff.FullName,
		Description: description,
		Amount:      req.Amount,
		TermMonths:  req.TermMonths,
		PerMonth:    perMonth,
		Balance:     req.Amount,
		EntryDate:   entryDate,
	}
	saved, err := s.balanceRepo.SavePayable(ctx, payableEntry)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "payable created",
		slog.Int64("payable_id", saved.PayableID),
		slog.Int64("staff_id", saved.EmployeeID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

func (s *BalanceService) ListPayables(ctx context.Context, actor domain.Principal, staffID *int64, branchID *int64) ([]domain.Payable, error) {
	if actor.IsBranchManager() {
		branchID = actor.BranchID
	}
	return s.balanceRepo.ListPayables(ctx, staffID, branchID)
}

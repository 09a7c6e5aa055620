package services

import (
	"context"
	"strings"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/payroll"
)

// LoanService manages the loan request workflow.
type LoanService struct {
	BaseService
	loanRepo  portsrepo.LoanRepositoryFacade
	staffRepo portsrepo.StaffRepositoryFacade
}

func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, staffRepo portsrepo.StaffRepositoryFacade) *LoanService {
	return &LoanService{loanRepo: loanRepo, staffRepo: staffRepo}
}

// CreateLoanRequest files a pending loan. Total and per-month figures are
// always recomputed here; whatever the client sent is discarded.
func (s *LoanService) CreateLoanRequest(ctx context.Context, actor domain.Principal, req dto.CreateLoanRequest) (*domain.LoanRequest, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.NewValidationError("employee does not exist")
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}

	loanType := strings.TrimSpace(req.LoanType)
	if loanType == "" {
		return nil, apperrors.NewValidationError("loan type is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	if req.Interest.IsNegative() {
		return nil, apperrors.NewValidationError("interest cannot be negative")
	}
	if req.TermMonths < 1 {
		return nil, apperrors.NewValidationError("term must be at least one month")
	}

	total, perMonth := payroll.LoanSchedule(req.Amount, req.Interest, req.TermMonths)

	request := domain.LoanRequest{
		EmployeeID: staff.StaffID,
		StaffName:  staff.FullName,
		LoanType:   loanType,
		Reason:     req.Reason,
		Amount:     req.Amount,
		Interest:   req.Interest,
		TermMonths: req.TermMonths,
		Total:      total,
		PerMonth:   perMonth,
	}
	saved, err := s.loanRepo.SaveLoanRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "loan request filed",
		slog.Int64("loan_request_id", saved.LoanRequestID),
		slog.Int64("employee_id", saved.EmployeeID),
		slog.String("total", saved.Total.String()))
	return saved, nil
}

func (s *LoanService) ListLoanRequests(ctx context.Context, actor domain.Principal, params dto.ListLoanParams) ([]domain.LoanRequest, error) {
	branchID, err := scopedBranchID(actor, params.BranchID)
	if err != nil {
		return nil, err
	}
	filter := portsrepo.WorkflowListFilter{BranchID: branchID}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		status := domain.ApprovalStatus(strings.TrimSpace(*params.Status))
		filter.Status = &status
	}
	return s.loanRepo.ListLoanRequests(ctx, filter)
}

func (s *LoanService) ApproveLoanRequest(ctx context.Context, actor domain.Principal, loanRequestID int64) (*domain.LoanRequest, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	approved, err := s.loanRepo.ApproveLoanRequest(ctx, loanRequestID, actor.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "loan request approved",
		slog.Int64("loan_request_id", loanRequestID),
		slog.Int64("approved_by", actor.UserID))
	return approved, nil
}

func (s *LoanService) RejectLoanRequest(ctx context.Context, actor domain.Principal, loanRequestID int64, reason string) (*domain.LoanRequest, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("rejection reason is required")
	}
	rejected, err := s.loanRepo.RejectLoanRequest(ctx, loanRequestID, actor.UserID, reason)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "loan request rejected",
		slog.Int64("loan_request_id", loanRequestID),
		slog.Int64("rejected_by", actor.UserID))
	return rejected, nil
}

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

// TransferOrderService manages staff transfer orders.
type TransferOrderService struct {
	BaseService
	orderRepo  portsrepo.TransferOrderRepositoryFacade
	staffRepo  portsrepo.StaffRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

func NewTransferOrderService(
	orderRepo portsrepo.TransferOrderRepositoryFacade,
	staffRepo portsrepo.StaffRepositoryFacade,
	branchRepo portsrepo.BranchRepositoryFacade,
) *TransferOrderService {
	return &TransferOrderService{orderRepo: orderRepo, staffRepo: staffRepo, branchRepo: branchRepo}
}

// CreateTransferOrder validates the move and files a pending order. Branch
// codes and names are snapshotted onto the order so later branch edits do not
// rewrite history.
func (s *TransferOrderService) CreateTransferOrder(ctx context.Context, actor domain.Principal, req dto.CreateTransferOrderRequest) (*domain.TransferOrder, error) {
	if req.PrevBranchID == req.ToBranchID {
		return nil, apperrors.NewValidationError("origin and destination branches must differ")
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.NewValidationError("employee does not exist")
	}

	prevBranch, err := s.branchRepo.FindBranchByID(ctx, req.PrevBranchID)
	if err != nil {
		return nil, apperrors.NewValidationError("origin branch does not exist")
	}
	toBranch, err := s.branchRepo.FindBranchByID(ctx, req.ToBranchID)
	if err != nil {
		return nil, apperrors.NewValidationError("destination branch does not exist")
	}

	// Branch managers may only move staff out of their own branch.
	if actor.IsBranchManager() && !actor.OwnsBranch(prevBranch.BranchID) {
		return nil, apperrors.ErrForbidden
	}
	if staff.BranchID == nil || *staff.BranchID != prevBranch.BranchID {
		return nil, apperrors.NewValidationError("employee is not assigned to the origin branch")
	}

	area := strings.TrimSpace(req.Area)
	division := strings.TrimSpace(req.Division)
	details := strings.TrimSpace(req.Details)
	if area == "" || division == "" || details == "" {
		return nil, apperrors.NewValidationError("area, division and details are required")
	}

	dateCreated, err := parseDate(req.DateCreated, "dateCreated")
	if err != nil {
		return nil, err
	}
	effectiveDate, err := parseDate(req.EffectiveDate, "effectiveDate")
	if err != nil {
		return nil, err
	}
	if effectiveDate.Before(dateCreated) {
		return nil, apperrors.NewValidationError("effectiveDate cannot be before dateCreated")
	}

	order := domain.TransferOrder{
		EmployeeID:     staff.StaffID,
		EmployeeName:   staff.FullName,
		PrevBranchID:   prevBranch.BranchID,
		PrevBranchCode: prevBranch.Code,
		PrevBranchName: prevBranch.Name,
		ToBranchID:     toBranch.BranchID,
		ToBranchCode:   toBranch.Code,
		ToBranchName:   toBranch.Name,
		Area:           area,
		Division:       division,
		DateCreated:    dateCreated,
		EffectiveDate:  effectiveDate,
		Details:        details,
		CreatedBy:      &actor.UserID,
	}
	saved, err := s.orderRepo.SaveTransferOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transfer order filed",
		slog.String("order_no", saved.OrderNo),
		slog.Int64("employee_id", saved.EmployeeID),
		slog.Int64("created_by", actor.UserID))
	return saved, nil
}

func (s *TransferOrderService) GetTransferOrderByID(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error) {
	order, err := s.orderRepo.FindTransferOrderByID(ctx, transferOrderID)
	if err != nil {
		return nil, err
	}
	if actor.IsBranchManager() && !actor.OwnsBranch(order.PrevBranchID) {
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}

func (s *TransferOrderService) ListTransferOrders(ctx context.Context, actor domain.Principal, params dto.ListTransferOrderParams) ([]domain.TransferOrder, error) {
	branchID, err := scopedBranchID(actor, params.BranchID)
	if err != nil {
		return nil, err
	}
	filter := portsrepo.WorkflowListFilter{BranchID: branchID}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		status := domain.ApprovalStatus(strings.TrimSpace(*params.Status))
		filter.Status = &status
	}
	return s.orderRepo.ListTransferOrders(ctx, filter)
}

func (s *TransferOrderService) ApproveTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	approved, err := s.orderRepo.ApproveTransferOrder(ctx, transferOrderID, actor.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transfer order approved",
		slog.String("order_no", approved.OrderNo),
		slog.Int64("approved_by", actor.UserID))
	return approved, nil
}

func (s *TransferOrderService) RejectTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64, reason string) (*domain.TransferOrder, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("rejection reason is required")
	}
	rejected, err := s.orderRepo.RejectTransferOrder(ctx, transferOrderID, actor.UserID, reason)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "transfer order rejected",
		slog.String("order_no", rejected.OrderNo),
		slog.Int64("rejected_by", actor.UserID))
	return rejected, nil
}

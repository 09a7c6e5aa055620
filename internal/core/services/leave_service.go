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

// LeaveService manages the leave request workflow.
type LeaveService struct {
	BaseService
	leaveRepo portsrepo.LeaveRepositoryFacade
	staffRepo portsrepo.StaffRepositoryFacade
}

func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, staffRepo portsrepo.StaffRepositoryFacade) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo, staffRepo: staffRepo}
}

func (s *LeaveService) CreateLeaveRequest(ctx context.Context, actor domain.Principal, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.NewValidationError("employee does not exist")
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}

	leaveType := strings.TrimSpace(req.LeaveType)
	if leaveType == "" {
		return nil, apperrors.NewValidationError("leave type is required")
	}

	start, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("endDate cannot be before startDate")
	}

	request := domain.LeaveRequest{
		EmployeeID: staff.StaffID,
		StaffName:  staff.FullName,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
	}
	saved, err := s.leaveRepo.SaveLeaveRequest(ctx, request)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "leave request filed",
		slog.Int64("leave_request_id", saved.LeaveRequestID),
		slog.Int64("employee_id", saved.EmployeeID))
	return saved, nil
}

func (s *LeaveService) ListLeaveRequests(ctx context.Context, actor domain.Principal, params dto.ListLeaveParams) ([]domain.LeaveRequest, error) {
	branchID, err := scopedBranchID(actor, params.BranchID)
	if err != nil {
		return nil, err
	}
	filter := portsrepo.WorkflowListFilter{BranchID: branchID}
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		status := domain.ApprovalStatus(strings.TrimSpace(*params.Status))
		filter.Status = &status
	}
	return s.leaveRepo.ListLeaveRequests(ctx, filter)
}

func (s *LeaveService) ApproveLeaveRequest(ctx context.Context, actor domain.Principal, leaveRequestID int64) (*domain.LeaveRequest, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	approved, err := s.leaveRepo.ApproveLeaveRequest(ctx, leaveRequestID, actor.UserID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "leave request approved",
		slog.Int64("leave_request_id", leaveRequestID),
		slog.Int64("approved_by", actor.UserID))
	return approved, nil
}

func (s *LeaveService) RejectLeaveRequest(ctx context.Context, actor domain.Principal, leaveRequestID int64, reason string) (*domain.LeaveRequest, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("rejection reason is required")
	}
	rejected, err := s.leaveRepo.RejectLeaveRequest(ctx, leaveRequestID, actor.UserID, reason)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "leave request rejected",
		slog.Int64("leave_request_id", leaveRequestID),
		slog.Int64("rejected_by", actor.UserID))
	return rejected, nil
}

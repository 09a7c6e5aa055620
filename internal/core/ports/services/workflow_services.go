package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// LeaveSvcFacade manages the leave request workflow.
type LeaveSvcFacade interface {
	// CreateLeaveRequest files a pending leave application.
	CreateLeaveRequest(ctx context.Context, actor domain.Principal, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves leave requests visible to the actor.
	ListLeaveRequests(ctx context.Context, actor domain.Principal, params dto.ListLeaveParams) ([]domain.LeaveRequest, error)

	// ApproveLeaveRequest moves a pending request to Approved. Admin only.
	ApproveLeaveRequest(ctx context.Context, actor domain.Principal, leaveRequestID int64) (*domain.LeaveRequest, error)

	// RejectLeaveRequest moves a pending request to Rejected. Admin only; the
	// reason is required.
	RejectLeaveRequest(ctx context.Context, actor domain.Principal, leaveRequestID int64, reason string) (*domain.LeaveRequest, error)
}

// LoanSvcFacade manages the loan request workflow.
type LoanSvcFacade interface {
	// CreateLoanRequest files a pending loan application with server-computed
	// total and per-month figures.
	CreateLoanRequest(ctx context.Context, actor domain.Principal, req dto.CreateLoanRequest) (*domain.LoanRequest, error)

	// ListLoanRequests retrieves loan requests visible to the actor.
	ListLoanRequests(ctx context.Context, actor domain.Principal, params dto.ListLoanParams) ([]domain.LoanRequest, error)

	// ApproveLoanRequest moves a pending request to Approved. Admin only.
	ApproveLoanRequest(ctx context.Context, actor domain.Principal, loanRequestID int64) (*domain.LoanRequest, error)

	// RejectLoanRequest moves a pending request to Rejected. Admin only; the
	// reason is required.
	RejectLoanRequest(ctx context.Context, actor domain.Principal, loanRequestID int64, reason string) (*domain.LoanRequest, error)
}

// TransferOrderSvcFacade manages staff transfer orders.
type TransferOrderSvcFacade interface {
	// CreateTransferOrder validates and files a pending transfer order with a
	// freshly minted order number.
	CreateTransferOrder(ctx context.Context, actor domain.Principal, req dto.CreateTransferOrderRequest) (*domain.TransferOrder, error)

	// GetTransferOrderByID retrieves one order visible to the actor.
	GetTransferOrderByID(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error)

	// ListTransferOrders retrieves orders visible to the actor.
	ListTransferOrders(ctx context.Context, actor domain.Principal, params dto.ListTransferOrderParams) ([]domain.TransferOrder, error)

	// ApproveTransferOrder moves a pending order to Approved. Admin only.
	ApproveTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error)

	// RejectTransferOrder moves a pending order to Rejected. Admin only; the
	// reason is required.
	RejectTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64, reason string) (*domain.TransferOrder, error)
}

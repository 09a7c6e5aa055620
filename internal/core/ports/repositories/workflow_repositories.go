package repositories

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// WorkflowListFilter narrows workflow listings. Nil fields mean no filtering;
// BranchID scopes by the staff member's branch.
type WorkflowListFilter struct {
	Status   *domain.ApprovalStatus
	BranchID *int64
}

// LeaveReader defines read operations for leave requests
type LeaveReader interface {
	// FindLeaveRequestByID retrieves a leave request by its identifier.
	FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves leave requests matching the filter, newest first.
	ListLeaveRequests(ctx context.Context, filter WorkflowListFilter) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write and transition operations for leave requests
type LeaveWriter interface {
	// SaveLeaveRequest persists a new pending leave request.
	SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error)

	// ApproveLeaveRequest moves a pending request to Approved. It returns the
	// updated row, or an error if the request is missing or not pending.
	ApproveLeaveRequest(ctx context.Context, leaveRequestID int64, approverID int64) (*domain.LeaveRequest, error)

	// RejectLeaveRequest moves a pending request to Rejected with a reason.
	RejectLeaveRequest(ctx context.Context, leaveRequestID int64, rejecterID int64, reason string) (*domain.LeaveRequest, error)
}

// LeaveRepositoryFacade combines all leave-related repository interfaces
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}

// LoanReader defines read operations for loan requests
type LoanReader interface {
	// FindLoanRequestByID retrieves a loan request by its identifier.
	FindLoanRequestByID(ctx context.Context, loanRequestID int64) (*domain.LoanRequest, error)

	// ListLoanRequests retrieves loan requests matching the filter, newest first.
	ListLoanRequests(ctx context.Context, filter WorkflowListFilter) ([]domain.LoanRequest, error)
}

// LoanWriter defines write and transition operations for loan requests
type LoanWriter interface {
	// SaveLoanRequest persists a new pending loan request.
	SaveLoanRequest(ctx context.Context, request domain.LoanRequest) (*domain.LoanRequest, error)

	// ApproveLoanRequest moves a pending request to Approved and stamps the
	// disbursement date.
	ApproveLoanRequest(ctx context.Context, loanRequestID int64, approverID int64) (*domain.LoanRequest, error)

	// RejectLoanRequest moves a pending request to Rejected with a reason.
	RejectLoanRequest(ctx context.Context, loanRequestID int64, rejecterID int64, reason string) (*domain.LoanRequest, error)
}

// LoanRepositoryFacade combines all loan-related repository interfaces
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}

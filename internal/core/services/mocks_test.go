package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
)

// --- Mock StaffRepository ---

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID int64) (*domain.Staff, error) {
	args := m.Called(ctx, staffID)
	var staff *domain.Staff
	if args.Get(0) != nil {
		staff = args.Get(0).(*domain.Staff)
	}
	return staff, args.Error(1)
}

func (m *MockStaffRepository) ListStaff(ctx context.Context, filter portsrepo.StaffListFilter) ([]domain.Staff, error) {
	args := m.Called(ctx, filter)
	var staff []domain.Staff
	if args.Get(0) != nil {
		staff = args.Get(0).([]domain.Staff)
	}
	return staff, args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	args := m.Called(ctx, staff)
	var saved *domain.Staff
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Staff)
	}
	return saved, args.Error(1)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	args := m.Called(ctx, staff)
	var updated *domain.Staff
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Staff)
	}
	return updated, args.Error(1)
}

func (m *MockStaffRepository) SetStaffPhoto(ctx context.Context, staffID int64, photoURL string) error {
	args := m.Called(ctx, staffID, photoURL)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, staffID int64) error {
	args := m.Called(ctx, staffID)
	return args.Error(0)
}

func (m *MockStaffRepository) SaveAttachment(ctx context.Context, attachment domain.StaffAttachment) (*domain.StaffAttachment, error) {
	args := m.Called(ctx, attachment)
	var saved *domain.StaffAttachment
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.StaffAttachment)
	}
	return saved, args.Error(1)
}

func (m *MockStaffRepository) ListAttachments(ctx context.Context, staffID int64) ([]domain.StaffAttachment, error) {
	args := m.Called(ctx, staffID)
	var attachments []domain.StaffAttachment
	if args.Get(0) != nil {
		attachments = args.Get(0).([]domain.StaffAttachment)
	}
	return attachments, args.Error(1)
}

func (m *MockStaffRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.StaffAttachment, error) {
	args := m.Called(ctx, attachmentID)
	var attachment *domain.StaffAttachment
	if args.Get(0) != nil {
		attachment = args.Get(0).(*domain.StaffAttachment)
	}
	return attachment, args.Error(1)
}

func (m *MockStaffRepository) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}

// --- Mock BranchRepository ---

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	var branches []domain.Branch
	if args.Get(0) != nil {
		branches = args.Get(0).([]domain.Branch)
	}
	return branches, args.Error(1)
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	args := m.Called(ctx, branch)
	var saved *domain.Branch
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Branch)
	}
	return saved, args.Error(1)
}

func (m *MockBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	args := m.Called(ctx, branch)
	var updated *domain.Branch
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Branch)
	}
	return updated, args.Error(1)
}

func (m *MockBranchRepository) DeleteBranch(ctx context.Context, branchID int64) error {
	args := m.Called(ctx, branchID)
	return args.Error(0)
}

// --- Mock LeaveRepository ---

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveRequestID)
	var lr *domain.LeaveRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LeaveRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLeaveRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, filter)
	var lrs []domain.LeaveRequest
	if args.Get(0) != nil {
		lrs = args.Get(0).([]domain.LeaveRequest)
	}
	return lrs, args.Error(1)
}

func (m *MockLeaveRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, request)
	var lr *domain.LeaveRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LeaveRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLeaveRepository) ApproveLeaveRequest(ctx context.Context, leaveRequestID int64, approverID int64) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveRequestID, approverID)
	var lr *domain.LeaveRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LeaveRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLeaveRepository) RejectLeaveRequest(ctx context.Context, leaveRequestID int64, rejecterID int64, reason string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveRequestID, rejecterID, reason)
	var lr *domain.LeaveRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LeaveRequest)
	}
	return lr, args.Error(1)
}

// --- Mock LoanRepository ---

type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanRequestByID(ctx context.Context, loanRequestID int64) (*domain.LoanRequest, error) {
	args := m.Called(ctx, loanRequestID)
	var lr *domain.LoanRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LoanRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLoanRepository) ListLoanRequests(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.LoanRequest, error) {
	args := m.Called(ctx, filter)
	var lrs []domain.LoanRequest
	if args.Get(0) != nil {
		lrs = args.Get(0).([]domain.LoanRequest)
	}
	return lrs, args.Error(1)
}

func (m *MockLoanRepository) SaveLoanRequest(ctx context.Context, request domain.LoanRequest) (*domain.LoanRequest, error) {
	args := m.Called(ctx, request)
	var lr *domain.LoanRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LoanRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLoanRepository) ApproveLoanRequest(ctx context.Context, loanRequestID int64, approverID int64) (*domain.LoanRequest, error) {
	args := m.Called(ctx, loanRequestID, approverID)
	var lr *domain.LoanRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LoanRequest)
	}
	return lr, args.Error(1)
}

func (m *MockLoanRepository) RejectLoanRequest(ctx context.Context, loanRequestID int64, rejecterID int64, reason string) (*domain.LoanRequest, error) {
	args := m.Called(ctx, loanRequestID, rejecterID, reason)
	var lr *domain.LoanRequest
	if args.Get(0) != nil {
		lr = args.Get(0).(*domain.LoanRequest)
	}
	return lr, args.Error(1)
}

// --- Mock TransferOrderRepository ---

type MockTransferOrderRepository struct {
	mock.Mock
}

func (m *MockTransferOrderRepository) FindTransferOrderByID(ctx context.Context, transferOrderID int64) (*domain.TransferOrder, error) {
	args := m.Called(ctx, transferOrderID)
	var order *domain.TransferOrder
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.TransferOrder)
	}
	return order, args.Error(1)
}

func (m *MockTransferOrderRepository) ListTransferOrders(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.TransferOrder, error) {
	args := m.Called(ctx, filter)
	var orders []domain.TransferOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.TransferOrder)
	}
	return orders, args.Error(1)
}

func (m *MockTransferOrderRepository) SaveTransferOrder(ctx context.Context, order domain.TransferOrder) (*domain.TransferOrder, error) {
	args := m.Called(ctx, order)
	var saved *domain.TransferOrder
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.TransferOrder)
	}
	return saved, args.Error(1)
}

func (m *MockTransferOrderRepository) ApproveTransferOrder(ctx context.Context, transferOrderID int64, approverID int64) (*domain.TransferOrder, error) {
	args := m.Called(ctx, transferOrderID, approverID)
	var order *domain.TransferOrder
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.TransferOrder)
	}
	return order, args.Error(1)
}

func (m *MockTransferOrderRepository) RejectTransferOrder(ctx context.Context, transferOrderID int64, rejecterID int64, reason string) (*domain.TransferOrder, error) {
	args := m.Called(ctx, transferOrderID, rejecterID, reason)
	var order *domain.TransferOrder
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.TransferOrder)
	}
	return order, args.Error(1)
}

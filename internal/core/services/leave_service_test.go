package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/core/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo *MockLeaveRepository
	mockStaffRepo *MockStaffRepository
	service       *services.LeaveService

	admin   domain.Principal
	manager domain.Principal
}

func (s *LeaveServiceTestSuite) SetupTest() {
	s.mockLeaveRepo = new(MockLeaveRepository)
	s.mockStaffRepo = new(MockStaffRepository)
	s.service = services.NewLeaveService(s.mockLeaveRepo, s.mockStaffRepo)

	s.admin = domain.Principal{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	s.manager = domain.Principal{UserID: 2, Username: "manager", Role: domain.RoleBranchManager, BranchID: int64Ptr(10)}
}

func (s *LeaveServiceTestSuite) TestCreateSnapshotsStaffName() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)
	s.mockLeaveRepo.On("SaveLeaveRequest", mock.Anything, mock.MatchedBy(func(lr domain.LeaveRequest) bool {
		return lr.StaffName == "Ana Reyes" && lr.LeaveType == "Vacation"
	})).Return(&domain.LeaveRequest{LeaveRequestID: 1, Status: domain.StatusPending}, nil).Once()

	req := dto.CreateLeaveRequest{
		EmployeeID: 5,
		LeaveType:  " Vacation ",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-05",
	}
	lr, err := s.service.CreateLeaveRequest(context.Background(), s.manager, req)

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, lr.Status)
	s.mockLeaveRepo.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestCreateRejectsUnknownEmployee() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).Return(nil, apperrors.ErrNotFound)

	req := dto.CreateLeaveRequest{EmployeeID: 5, LeaveType: "Sick", StartDate: "2026-09-01", EndDate: "2026-09-02"}
	_, err := s.service.CreateLeaveRequest(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LeaveServiceTestSuite) TestCreateDeniesForeignBranchManager() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(30)}, nil)

	req := dto.CreateLeaveRequest{EmployeeID: 5, LeaveType: "Sick", StartDate: "2026-09-01", EndDate: "2026-09-02"}
	_, err := s.service.CreateLeaveRequest(context.Background(), s.manager, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LeaveServiceTestSuite) TestCreateRejectsReversedDates() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)

	req := dto.CreateLeaveRequest{EmployeeID: 5, LeaveType: "Sick", StartDate: "2026-09-05", EndDate: "2026-09-01"}
	_, err := s.service.CreateLeaveRequest(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LeaveServiceTestSuite) TestApproveRequiresAdmin() {
	_, err := s.service.ApproveLeaveRequest(context.Background(), s.manager, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockLeaveRepo.AssertNotCalled(s.T(), "ApproveLeaveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LeaveServiceTestSuite) TestApproveReturnsResolvedRequest() {
	now := time.Now()
	resolved := &domain.LeaveRequest{
		LeaveRequestID: 1,
		Status:         domain.StatusApproved,
		Resolution:     domain.Resolution{ApprovedBy: int64Ptr(1), ApprovedAt: &now},
	}
	s.mockLeaveRepo.On("ApproveLeaveRequest", mock.Anything, int64(1), s.admin.UserID).Return(resolved, nil).Once()

	lr, err := s.service.ApproveLeaveRequest(context.Background(), s.admin, 1)

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, lr.Status)
	s.NotNil(lr.ApprovedAt)
	s.mockLeaveRepo.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestRejectRequiresReason() {
	_, err := s.service.RejectLeaveRequest(context.Background(), s.admin, 1, "")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockLeaveRepo.AssertNotCalled(s.T(), "RejectLeaveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LeaveServiceTestSuite) TestListScopesManagerToOwnBranch() {
	s.mockLeaveRepo.On("ListLeaveRequests", mock.Anything, mock.MatchedBy(func(f portsrepo.WorkflowListFilter) bool {
		return f.BranchID != nil && *f.BranchID == 10 &&
			f.Status != nil && *f.Status == domain.StatusPending
	})).Return([]domain.LeaveRequest{}, nil).Once()

	_, err := s.service.ListLeaveRequests(context.Background(), s.manager, dto.ListLeaveParams{
		Status:   strPtr("Pending"),
		BranchID: int64Ptr(99),
	})

	s.Require().NoError(err)
	s.mockLeaveRepo.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestListDeniesBranchlessManager() {
	branchless := domain.Principal{UserID: 3, Username: "orphan", Role: domain.RoleBranchManager}

	_, err := s.service.ListLeaveRequests(context.Background(), branchless, dto.ListLeaveParams{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockLeaveRepo.AssertNotCalled(s.T(), "ListLeaveRequests", mock.Anything, mock.Anything)
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/core/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo  *MockLoanRepository
	mockStaffRepo *MockStaffRepository
	service       *services.LoanService

	admin   domain.Principal
	manager domain.Principal
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.mockLoanRepo = new(MockLoanRepository)
	s.mockStaffRepo = new(MockStaffRepository)
	s.service = services.NewLoanService(s.mockLoanRepo, s.mockStaffRepo)

	s.admin = domain.Principal{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	s.manager = domain.Principal{UserID: 2, Username: "manager", Role: domain.RoleBranchManager, BranchID: int64Ptr(10)}
}

func (s *LoanServiceTestSuite) TestCreateComputesScheduleServerSide() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)
	s.mockLoanRepo.On("SaveLoanRequest", mock.Anything, mock.MatchedBy(func(lr domain.LoanRequest) bool {
		// 10000 at 5% over 10 months: total 10500, 1050 a month.
		return lr.Total.Equal(decimal.NewFromInt(10500)) &&
			lr.PerMonth.Equal(decimal.NewFromInt(1050))
	})).Return(&domain.LoanRequest{LoanRequestID: 1, Status: domain.StatusPending}, nil).Once()

	req := dto.CreateLoanRequest{
		EmployeeID: 5,
		LoanType:   "Salary Loan",
		Amount:     decimal.NewFromInt(10000),
		Interest:   decimal.NewFromInt(5),
		TermMonths: 10,
	}
	lr, err := s.service.CreateLoanRequest(context.Background(), s.admin, req)

	s.Require().NoError(err)
	s.Equal(domain.StatusPending, lr.Status)
	s.mockLoanRepo.AssertExpectations(s.T())
}

func (s *LoanServiceTestSuite) TestCreateRejectsNonPositiveAmount() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)

	req := dto.CreateLoanRequest{
		EmployeeID: 5,
		LoanType:   "Salary Loan",
		Amount:     decimal.Zero,
		TermMonths: 10,
	}
	_, err := s.service.CreateLoanRequest(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockLoanRepo.AssertNotCalled(s.T(), "SaveLoanRequest", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestCreateRejectsZeroTerm() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)

	req := dto.CreateLoanRequest{
		EmployeeID: 5,
		LoanType:   "Salary Loan",
		Amount:     decimal.NewFromInt(1000),
		TermMonths: 0,
	}
	_, err := s.service.CreateLoanRequest(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LoanServiceTestSuite) TestCreateDeniesForeignBranchManager() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(30)}, nil)

	req := dto.CreateLoanRequest{
		EmployeeID: 5,
		LoanType:   "Salary Loan",
		Amount:     decimal.NewFromInt(1000),
		TermMonths: 5,
	}
	_, err := s.service.CreateLoanRequest(context.Background(), s.manager, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LoanServiceTestSuite) TestApproveRequiresAdmin() {
	_, err := s.service.ApproveLoanRequest(context.Background(), s.manager, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockLoanRepo.AssertNotCalled(s.T(), "ApproveLoanRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestApproveSurfacesConflict() {
	s.mockLoanRepo.On("ApproveLoanRequest", mock.Anything, int64(1), s.admin.UserID).
		Return(nil, apperrors.NewConflictError("loan request not found or not pending")).Once()

	_, err := s.service.ApproveLoanRequest(context.Background(), s.admin, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *LoanServiceTestSuite) TestRejectRequiresReason() {
	_, err := s.service.RejectLoanRequest(context.Background(), s.admin, 1, " \t ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockLoanRepo.AssertNotCalled(s.T(), "RejectLoanRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestListDeniesBranchlessManager() {
	branchless := domain.Principal{UserID: 3, Username: "orphan", Role: domain.RoleBranchManager}

	_, err := s.service.ListLoanRequests(context.Background(), branchless, dto.ListLoanParams{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockLoanRepo.AssertNotCalled(s.T(), "ListLoanRequests", mock.Anything, mock.Anything)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}

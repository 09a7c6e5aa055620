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

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

type TransferOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo  *MockTransferOrderRepository
	mockStaffRepo  *MockStaffRepository
	mockBranchRepo *MockBranchRepository
	service        *services.TransferOrderService

	admin   domain.Principal
	manager domain.Principal
}

func (s *TransferOrderServiceTestSuite) SetupTest() {
	s.mockOrderRepo = new(MockTransferOrderRepository)
	s.mockStaffRepo = new(MockStaffRepository)
	s.mockBranchRepo = new(MockBranchRepository)
	s.service = services.NewTransferOrderService(s.mockOrderRepo, s.mockStaffRepo, s.mockBranchRepo)

	s.admin = domain.Principal{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	s.manager = domain.Principal{UserID: 2, Username: "manager", Role: domain.RoleBranchManager, BranchID: int64Ptr(10)}
}

func (s *TransferOrderServiceTestSuite) validRequest() dto.CreateTransferOrderRequest {
	return dto.CreateTransferOrderRequest{
		EmployeeID:    5,
		PrevBranchID:  10,
		ToBranchID:    20,
		Area:          "North",
		Division:      "Lending",
		DateCreated:   "2026-08-01",
		EffectiveDate: "2026-09-01",
		Details:       "Fills the vacant bookkeeper slot.",
	}
}

func (s *TransferOrderServiceTestSuite) stubLookups() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(10)}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(10)).
		Return(&domain.Branch{BranchID: 10, Code: "B010", Name: "Main"}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(20)).
		Return(&domain.Branch{BranchID: 20, Code: "B020", Name: "North"}, nil)
}

func (s *TransferOrderServiceTestSuite) TestCreateSnapshotsBranchDetails() {
	ctx := context.Background()
	s.stubLookups()
	s.mockOrderRepo.On("SaveTransferOrder", mock.Anything, mock.MatchedBy(func(o domain.TransferOrder) bool {
		return o.EmployeeName == "Ana Reyes" &&
			o.PrevBranchCode == "B010" && o.ToBranchCode == "B020" &&
			o.CreatedBy != nil && *o.CreatedBy == s.admin.UserID
	})).Return(&domain.TransferOrder{TransferOrderID: 1, OrderNo: "TSO-2026-08-0001", Status: domain.StatusPending}, nil).Once()

	order, err := s.service.CreateTransferOrder(ctx, s.admin, s.validRequest())

	s.Require().NoError(err)
	s.Equal("TSO-2026-08-0001", order.OrderNo)
	s.Equal(domain.StatusPending, order.Status)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *TransferOrderServiceTestSuite) TestCreateRejectsSameBranch() {
	req := s.validRequest()
	req.ToBranchID = req.PrevBranchID

	_, err := s.service.CreateTransferOrder(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockOrderRepo.AssertNotCalled(s.T(), "SaveTransferOrder", mock.Anything, mock.Anything)
}

func (s *TransferOrderServiceTestSuite) TestCreateRejectsStaffOutsideOriginBranch() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(30)}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(10)).
		Return(&domain.Branch{BranchID: 10, Code: "B010"}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(20)).
		Return(&domain.Branch{BranchID: 20, Code: "B020"}, nil)

	_, err := s.service.CreateTransferOrder(context.Background(), s.admin, s.validRequest())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransferOrderServiceTestSuite) TestCreateManagerMustOwnOriginBranch() {
	req := s.validRequest()
	req.PrevBranchID = 30
	req.ToBranchID = 10
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, FullName: "Ana Reyes", BranchID: int64Ptr(30)}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(30)).
		Return(&domain.Branch{BranchID: 30, Code: "B030"}, nil)
	s.mockBranchRepo.On("FindBranchByID", mock.Anything, int64(10)).
		Return(&domain.Branch{BranchID: 10, Code: "B010"}, nil)

	_, err := s.service.CreateTransferOrder(context.Background(), s.manager, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransferOrderServiceTestSuite) TestCreateRejectsEffectiveBeforeCreated() {
	s.stubLookups()
	req := s.validRequest()
	req.EffectiveDate = "2026-07-01"

	_, err := s.service.CreateTransferOrder(context.Background(), s.admin, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransferOrderServiceTestSuite) TestApproveRequiresAdmin() {
	_, err := s.service.ApproveTransferOrder(context.Background(), s.manager, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockOrderRepo.AssertNotCalled(s.T(), "ApproveTransferOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransferOrderServiceTestSuite) TestApprovePassesActorID() {
	now := time.Now()
	resolved := &domain.TransferOrder{
		TransferOrderID: 1,
		OrderNo:         "TSO-2026-08-0001",
		Status:          domain.StatusApproved,
		Resolution:      domain.Resolution{ApprovedBy: int64Ptr(1), ApprovedAt: &now},
	}
	s.mockOrderRepo.On("ApproveTransferOrder", mock.Anything, int64(1), s.admin.UserID).Return(resolved, nil).Once()

	order, err := s.service.ApproveTransferOrder(context.Background(), s.admin, 1)

	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, order.Status)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *TransferOrderServiceTestSuite) TestApproveSurfacesConflict() {
	s.mockOrderRepo.On("ApproveTransferOrder", mock.Anything, int64(1), s.admin.UserID).
		Return(nil, apperrors.NewConflictError("transfer order not found or not pending")).Once()

	_, err := s.service.ApproveTransferOrder(context.Background(), s.admin, 1)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *TransferOrderServiceTestSuite) TestRejectRequiresReason() {
	_, err := s.service.RejectTransferOrder(context.Background(), s.admin, 1, "   ")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockOrderRepo.AssertNotCalled(s.T(), "RejectTransferOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransferOrderServiceTestSuite) TestRejectTrimsReason() {
	resolved := &domain.TransferOrder{TransferOrderID: 1, Status: domain.StatusRejected}
	s.mockOrderRepo.On("RejectTransferOrder", mock.Anything, int64(1), s.admin.UserID, "position already filled").
		Return(resolved, nil).Once()

	order, err := s.service.RejectTransferOrder(context.Background(), s.admin, 1, "  position already filled  ")

	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, order.Status)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *TransferOrderServiceTestSuite) TestListScopesManagerToOwnBranch() {
	s.mockOrderRepo.On("ListTransferOrders", mock.Anything, mock.MatchedBy(func(f portsrepo.WorkflowListFilter) bool {
		return f.BranchID != nil && *f.BranchID == 10
	})).Return([]domain.TransferOrder{}, nil).Once()

	// The manager asks for another branch; the filter still pins their own.
	_, err := s.service.ListTransferOrders(context.Background(), s.manager, dto.ListTransferOrderParams{BranchID: int64Ptr(99)})

	s.Require().NoError(err)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *TransferOrderServiceTestSuite) TestListDeniesBranchlessManager() {
	// A manager row seeded without a branch must see nothing, not everything.
	branchless := domain.Principal{UserID: 3, Username: "orphan", Role: domain.RoleBranchManager}

	_, err := s.service.ListTransferOrders(context.Background(), branchless, dto.ListTransferOrderParams{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockOrderRepo.AssertNotCalled(s.T(), "ListTransferOrders", mock.Anything, mock.Anything)
}

func (s *TransferOrderServiceTestSuite) TestGetDeniesForeignBranchManager() {
	s.mockOrderRepo.On("FindTransferOrderByID", mock.Anything, int64(7)).
		Return(&domain.TransferOrder{TransferOrderID: 7, PrevBranchID: 30}, nil).Once()

	_, err := s.service.GetTransferOrderByID(context.Background(), s.manager, 7)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTransferOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransferOrderServiceTestSuite))
}

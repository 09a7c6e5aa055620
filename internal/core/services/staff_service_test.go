package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/core/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/platform/config"
)

type StaffServiceTestSuite struct {
	suite.Suite
	mockStaffRepo  *MockStaffRepository
	mockBranchRepo *MockBranchRepository
	service        *services.StaffService

	admin   domain.Principal
	manager domain.Principal
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.mockStaffRepo = new(MockStaffRepository)
	s.mockBranchRepo = new(MockBranchRepository)
	cfg := &config.Config{UploadDir: s.T().TempDir()}
	s.service = services.NewStaffService(cfg, s.mockStaffRepo, s.mockBranchRepo)

	s.admin = domain.Principal{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	s.manager = domain.Principal{UserID: 2, Username: "manager", Role: domain.RoleBranchManager, BranchID: int64Ptr(10)}
}

func (s *StaffServiceTestSuite) TestListScopesManagerToOwnBranch() {
	s.mockStaffRepo.On("ListStaff", mock.Anything, mock.MatchedBy(func(f portsrepo.StaffListFilter) bool {
		return f.BranchID != nil && *f.BranchID == 10
	})).Return([]domain.Staff{}, nil).Once()

	_, err := s.service.ListStaff(context.Background(), s.manager, dto.ListStaffParams{
		BranchID: int64Ptr(99),
	})

	s.Require().NoError(err)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestListDeniesBranchlessManager() {
	branchless := domain.Principal{UserID: 3, Username: "orphan", Role: domain.RoleBranchManager}

	_, err := s.service.ListStaff(context.Background(), branchless, dto.ListStaffParams{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockStaffRepo.AssertNotCalled(s.T(), "ListStaff", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestListPassesAreaFilter() {
	s.mockStaffRepo.On("ListStaff", mock.Anything, mock.MatchedBy(func(f portsrepo.StaffListFilter) bool {
		return f.Area != nil && *f.Area == "Quarry"
	})).Return([]domain.Staff{}, nil).Once()

	_, err := s.service.ListStaff(context.Background(), s.admin, dto.ListStaffParams{
		Area: strPtr("Quarry"),
	})

	s.Require().NoError(err)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestDeleteStaffAdminOnly() {
	err := s.service.DeleteStaff(context.Background(), s.manager, 5)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.mockStaffRepo.AssertNotCalled(s.T(), "DeleteStaff", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestDeleteStaff() {
	s.mockStaffRepo.On("DeleteStaff", mock.Anything, int64(5)).Return(nil).Once()

	err := s.service.DeleteStaff(context.Background(), s.admin, 5)

	s.Require().NoError(err)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestDeleteStaffSurfacesReferenceConflict() {
	s.mockStaffRepo.On("DeleteStaff", mock.Anything, int64(5)).
		Return(apperrors.NewConflictError("staff is still referenced by requests, orders or payables")).Once()

	err := s.service.DeleteStaff(context.Background(), s.admin, 5)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *StaffServiceTestSuite) TestDeleteAttachment() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, BranchID: int64Ptr(10)}, nil)
	s.mockStaffRepo.On("FindAttachmentByID", mock.Anything, int64(7)).
		Return(&domain.StaffAttachment{AttachmentID: 7, StaffID: 5}, nil)
	s.mockStaffRepo.On("DeleteAttachment", mock.Anything, int64(7)).Return(nil).Once()

	err := s.service.DeleteAttachment(context.Background(), s.manager, 5, 7)

	s.Require().NoError(err)
	s.mockStaffRepo.AssertExpectations(s.T())
}

func (s *StaffServiceTestSuite) TestDeleteAttachmentOfOtherStaffNotFound() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, BranchID: int64Ptr(10)}, nil)
	s.mockStaffRepo.On("FindAttachmentByID", mock.Anything, int64(7)).
		Return(&domain.StaffAttachment{AttachmentID: 7, StaffID: 6}, nil)

	err := s.service.DeleteAttachment(context.Background(), s.manager, 5, 7)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockStaffRepo.AssertNotCalled(s.T(), "DeleteAttachment", mock.Anything, mock.Anything)
}

func (s *StaffServiceTestSuite) TestDeleteAttachmentDeniedForForeignBranch() {
	s.mockStaffRepo.On("FindStaffByID", mock.Anything, int64(5)).
		Return(&domain.Staff{StaffID: 5, BranchID: int64Ptr(30)}, nil)

	err := s.service.DeleteAttachment(context.Background(), s.manager, 5, 7)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestStaffServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}

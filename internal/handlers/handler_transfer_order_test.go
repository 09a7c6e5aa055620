package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/handlers"
	"github.com/pvfc/payroll_backoffice_app/internal/platform/config"
	"github.com/pvfc/payroll_backoffice_app/internal/utils"
)

// --- Mock TransferOrderService ---
type MockTransferOrderService struct {
	mock.Mock
}

func (m *MockTransferOrderService) CreateTransferOrder(ctx context.Context, actor domain.Principal, req dto.CreateTransferOrderRequest) (*domain.TransferOrder, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferOrder), args.Error(1)
}

func (m *MockTransferOrderService) GetTransferOrderByID(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error) {
	args := m.Called(ctx, actor, transferOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferOrder), args.Error(1)
}

func (m *MockTransferOrderService) ListTransferOrders(ctx context.Context, actor domain.Principal, params dto.ListTransferOrderParams) ([]domain.TransferOrder, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferOrder), args.Error(1)
}

func (m *MockTransferOrderService) ApproveTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64) (*domain.TransferOrder, error) {
	args := m.Called(ctx, actor, transferOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferOrder), args.Error(1)
}

func (m *MockTransferOrderService) RejectTransferOrder(ctx context.Context, actor domain.Principal, transferOrderID int64, reason string) (*domain.TransferOrder, error) {
	args := m.Called(ctx, actor, transferOrderID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferOrder), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransferOrderSvcFacade = (*MockTransferOrderService)(nil)

// --- Test Suite ---
type TransferOrderHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransferOrderService
	jwtSecret   string
}

// generateTestToken mints a JWT the auth middleware will accept.
func (suite *TransferOrderHandlerTestSuite) generateTestToken(userID int64, role string, branchID *int64) string {
	token, err := utils.GenerateJWT(userID, "tester", role, branchID, suite.jwtSecret, time.Hour, "payroll-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransferOrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockTransferOrderService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		TransferOrder: suite.mockService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransferOrderHandlerTestSuite) TestApproveTransferOrder_Success() {
	now := time.Now()
	adminID := int64(1)
	expected := &domain.TransferOrder{
		TransferOrderID: 42,
		OrderNo:      "TSO-2026-08-0007",
		EmployeeID:   9,
		EmployeeName: "Maria Santos",
		Status:       domain.StatusApproved,
		Resolution: domain.Resolution{
			ApprovedBy: &adminID,
			ApprovedAt: &now,
		},
	}

	suite.mockService.On("ApproveTransferOrder",
		mock.Anything,
		mock.MatchedBy(func(p domain.Principal) bool { return p.UserID == adminID && p.IsAdmin() }),
		int64(42),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, string(domain.RoleAdmin), nil))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.TransferOrderResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(expected.OrderNo, body.OrderNo)
	suite.Equal(string(domain.StatusApproved), body.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferOrderHandlerTestSuite) TestApproveTransferOrder_Conflict() {
	adminID := int64(1)
	suite.mockService.On("ApproveTransferOrder", mock.Anything, mock.Anything, int64(42)).
		Return(nil, apperrors.NewConflictError("transfer order not found or not pending")).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, string(domain.RoleAdmin), nil))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var body handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("transfer order not found or not pending", body.Error)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferOrderHandlerTestSuite) TestApproveTransferOrder_Forbidden() {
	branchID := int64(3)
	suite.mockService.On("ApproveTransferOrder", mock.Anything, mock.Anything, int64(42)).
		Return(nil, apperrors.ErrForbidden).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(7, string(domain.RoleBranchManager), &branchID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferOrderHandlerTestSuite) TestApproveTransferOrder_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/approve", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ApproveTransferOrder")
}

func (suite *TransferOrderHandlerTestSuite) TestRejectTransferOrder_MissingReason() {
	adminID := int64(1)

	payload := bytes.NewBufferString(`{}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/reject", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, string(domain.RoleAdmin), nil))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "RejectTransferOrder")
}

func (suite *TransferOrderHandlerTestSuite) TestRejectTransferOrder_Success() {
	adminID := int64(1)
	reason := "position already filled"
	expected := &domain.TransferOrder{
		TransferOrderID: 42,
		OrderNo: "TSO-2026-08-0007",
		Status:  domain.StatusRejected,
	}

	suite.mockService.On("RejectTransferOrder", mock.Anything, mock.Anything, int64(42), reason).
		Return(expected, nil).Once()

	body, _ := json.Marshal(dto.RejectRequest{Reason: reason})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transfer-orders/42/reject", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, string(domain.RoleAdmin), nil))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferOrderHandlerTestSuite) TestListTransferOrders_PassesFilters() {
	branchID := int64(3)
	expected := []domain.TransferOrder{
		{TransferOrderID: 1, OrderNo: "TSO-2026-08-0001", Status: domain.StatusPending},
	}

	suite.mockService.On("ListTransferOrders",
		mock.Anything,
		mock.MatchedBy(func(p domain.Principal) bool { return p.IsBranchManager() }),
		mock.MatchedBy(func(params dto.ListTransferOrderParams) bool {
			return params.Status != nil && *params.Status == "Pending"
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/transfer-orders?status=%s", "Pending")
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(7, string(domain.RoleBranchManager), &branchID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body []dto.TransferOrderResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.Equal("TSO-2026-08-0001", body[0].OrderNo)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransferOrderHandlerTestSuite) TestGetTransferOrder_InvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transfer-orders/abc", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(1, string(domain.RoleAdmin), nil))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetTransferOrderByID")
}

// --- Run Test Suite ---
func TestTransferOrderHandler(t *testing.T) {
	suite.Run(t, new(TransferOrderHandlerTestSuite))
}

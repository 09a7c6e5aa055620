package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// LoanHandler handles loan request workflow endpoints.
type LoanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(ls portssvc.LoanSvcFacade) *LoanHandler {
	return &LoanHandler{loanService: ls}
}

// registerLoanRoutes sets up the routes for loan requests.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := NewLoanHandler(loanService)

	loans := rg.Group("/loan-requests")
	{
		loans.POST("", h.CreateLoanRequest)
		loans.GET("", h.ListLoanRequests)
		loans.POST("/:id/approve", h.ApproveLoanRequest)
		loans.POST("/:id/reject", h.RejectLoanRequest)
	}
}

// CreateLoanRequest godoc
// @Summary File loan request
// @Description Files a pending loan application. The total and monthly amortization are computed server-side from the amount, interest and term.
// @Tags loan-requests
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /loan-requests [post]
func (h *LoanHandler) CreateLoanRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoanRequest(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// ListLoanRequests godoc
// @Summary List loan requests
// @Description Lists loan requests, optionally filtered by status or branch. Branch managers only see their own branch.
// @Tags loan-requests
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Param branchID query int false "Branch ID"
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /loan-requests [get]
func (h *LoanHandler) ListLoanRequests(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.ListLoanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	loans, err := h.loanService.ListLoanRequests(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoanResponse(loans))
}

// ApproveLoanRequest godoc
// @Summary Approve loan request
// @Description Moves a pending loan request to Approved and stamps the disbursement date. Admin only.
// @Tags loan-requests
// @Produce json
// @Param id path int true "Loan request ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /loan-requests/{id}/approve [post]
func (h *LoanHandler) ApproveLoanRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	loanID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	loan, err := h.loanService.ApproveLoanRequest(c.Request.Context(), actor, loanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// RejectLoanRequest godoc
// @Summary Reject loan request
// @Description Moves a pending loan request to Rejected with a reason. Admin only.
// @Tags loan-requests
// @Accept json
// @Produce json
// @Param id path int true "Loan request ID"
// @Param rejection body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /loan-requests/{id}/reject [post]
func (h *LoanHandler) RejectLoanRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	loanID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rejection reason is required"})
		return
	}

	loan, err := h.loanService.RejectLoanRequest(c.Request.Context(), actor, loanID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

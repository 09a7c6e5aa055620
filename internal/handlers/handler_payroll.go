package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// PayrollHandler handles the computed payroll sheet endpoint.
type PayrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(ps portssvc.PayrollSvcFacade) *PayrollHandler {
	return &PayrollHandler{payrollService: ps}
}

// registerPayrollRoutes sets up the payroll sheet route.
func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := NewPayrollHandler(payrollService)

	rg.GET("/payroll", h.ListPayroll)
}

// ListPayroll godoc
// @Summary Compute payroll sheet
// @Description Returns one computed line per active employee with earnings, statutory deductions, loan amortizations capped at remaining balances, and derived totals. Branch managers only see their own branch.
// @Tags payroll
// @Produce json
// @Param branchID query int false "Branch ID"
// @Param date query string false "Payroll date (2006-01-02), defaults to today"
// @Success 200 {array} dto.PayrollRowResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll [get]
func (h *PayrollHandler) ListPayroll(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.ListPayrollParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.payrollService.ListPayroll(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayrollResponse(rows))
}

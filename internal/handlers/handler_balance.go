package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BalanceHandler handles staff balance and payable endpoints.
type BalanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(bs portssvc.BalanceSvcFacade) *BalanceHandler {
	return &BalanceHandler{balanceService: bs}
}

// registerBalanceRoutes sets up the routes for balances and payables.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := NewBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.ListBalances)
		balances.GET("/:staffID", h.GetBalance)
		balances.PUT("/:staffID", h.UpdateBalance)
	}

	payables := rg.Group("/payables")
	{
		payables.POST("", h.CreatePayable)
		payables.GET("", h.ListPayables)
	}
}

// optionalInt64Query parses an optional integer query parameter.
func optionalInt64Query(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	return &value, true
}

// ListBalances godoc
// @Summary List staff balances
// @Description Lists deduction balances, optionally filtered by branch. Branch managers only see their own branch.
// @Tags balances
// @Produce json
// @Param branchID query int false "Branch ID"
// @Success 200 {array} dto.StaffBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances [get]
func (h *BalanceHandler) ListBalances(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	branchID, ok := optionalInt64Query(c, "branchID")
	if !ok {
		return
	}

	balances, err := h.balanceService.ListBalances(c.Request.Context(), actor, branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffBalanceResponse(balances))
}

// GetBalance godoc
// @Summary Get staff balance
// @Tags balances
// @Produce json
// @Param staffID path int true "Staff ID"
// @Success 200 {object} dto.StaffBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances/{staffID} [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "staffID")
	if !ok {
		return
	}

	balance, err := h.balanceService.GetBalanceByStaffID(c.Request.Context(), actor, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffBalanceResponse(balance))
}

// UpdateBalance godoc
// @Summary Update staff balance
// @Description Overwrites the provided deduction balance columns. Admin only; negative amounts are rejected.
// @Tags balances
// @Accept json
// @Produce json
// @Param staffID path int true "Staff ID"
// @Param balance body dto.UpdateStaffBalanceRequest true "Columns to overwrite"
// @Success 200 {object} dto.StaffBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balances/{staffID} [put]
func (h *BalanceHandler) UpdateBalance(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "staffID")
	if !ok {
		return
	}

	var req dto.UpdateStaffBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := h.balanceService.UpdateBalance(c.Request.Context(), actor, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffBalanceResponse(balance))
}

// CreatePayable godoc
// @Summary Create payable entry
// @Description Opens a payable schedule with a server-computed monthly deduction. Admin only.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {object} dto.PayableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [post]
func (h *BalanceHandler) CreatePayable(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	payable, err := h.balanceService.CreatePayable(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPayableResponse(payable))
}

// ListPayables godoc
// @Summary List payable entries
// @Description Lists payables, optionally filtered by staff member or branch. Branch managers only see their own branch.
// @Tags payables
// @Produce json
// @Param staffID query int false "Staff ID"
// @Param branchID query int false "Branch ID"
// @Success 200 {array} dto.PayableResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [get]
func (h *BalanceHandler) ListPayables(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := optionalInt64Query(c, "staffID")
	if !ok {
		return
	}
	branchID, ok := optionalInt64Query(c, "branchID")
	if !ok {
		return
	}

	payables, err := h.balanceService.ListPayables(c.Request.Context(), actor, staffID, branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayableResponse(payables))
}

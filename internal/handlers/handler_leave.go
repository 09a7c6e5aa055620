package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// LeaveHandler handles leave request workflow endpoints.
type LeaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(ls portssvc.LeaveSvcFacade) *LeaveHandler {
	return &LeaveHandler{leaveService: ls}
}

// registerLeaveRoutes sets up the routes for leave requests.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := NewLeaveHandler(leaveService)

	leaves := rg.Group("/leave-requests")
	{
		leaves.POST("", h.CreateLeaveRequest)
		leaves.GET("", h.ListLeaveRequests)
		leaves.POST("/:id/approve", h.ApproveLeaveRequest)
		leaves.POST("/:id/reject", h.RejectLeaveRequest)
	}
}

// CreateLeaveRequest godoc
// @Summary File leave request
// @Description Files a pending leave application for an employee the actor manages.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param leave body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests [post]
func (h *LeaveHandler) CreateLeaveRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	leave, err := h.leaveService.CreateLeaveRequest(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaveResponse(leave))
}

// ListLeaveRequests godoc
// @Summary List leave requests
// @Description Lists leave requests, optionally filtered by status or branch. Branch managers only see their own branch.
// @Tags leave-requests
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Param branchID query int false "Branch ID"
// @Success 200 {array} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests [get]
func (h *LeaveHandler) ListLeaveRequests(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.ListLeaveParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	leaves, err := h.leaveService.ListLeaveRequests(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveResponse(leaves))
}

// ApproveLeaveRequest godoc
// @Summary Approve leave request
// @Description Moves a pending leave request to Approved. Admin only.
// @Tags leave-requests
// @Produce json
// @Param id path int true "Leave request ID"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/approve [post]
func (h *LeaveHandler) ApproveLeaveRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	leaveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	leave, err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), actor, leaveID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

// RejectLeaveRequest godoc
// @Summary Reject leave request
// @Description Moves a pending leave request to Rejected with a reason. Admin only.
// @Tags leave-requests
// @Accept json
// @Produce json
// @Param id path int true "Leave request ID"
// @Param rejection body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.LeaveResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave-requests/{id}/reject [post]
func (h *LeaveHandler) RejectLeaveRequest(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	leaveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rejection reason is required"})
		return
	}

	leave, err := h.leaveService.RejectLeaveRequest(c.Request.Context(), actor, leaveID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveResponse(leave))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// TransferOrderHandler handles staff transfer order endpoints.
type TransferOrderHandler struct {
	transferOrderService portssvc.TransferOrderSvcFacade
}

// NewTransferOrderHandler creates a new TransferOrderHandler.
func NewTransferOrderHandler(ts portssvc.TransferOrderSvcFacade) *TransferOrderHandler {
	return &TransferOrderHandler{transferOrderService: ts}
}

// registerTransferOrderRoutes sets up the routes for transfer orders.
func registerTransferOrderRoutes(rg *gin.RouterGroup, transferOrderService portssvc.TransferOrderSvcFacade) {
	h := NewTransferOrderHandler(transferOrderService)

	orders := rg.Group("/transfer-orders")
	{
		orders.POST("", h.CreateTransferOrder)
		orders.GET("", h.ListTransferOrders)
		orders.GET("/:id", h.GetTransferOrder)
		orders.POST("/:id/approve", h.ApproveTransferOrder)
		orders.POST("/:id/reject", h.RejectTransferOrder)
	}
}

// CreateTransferOrder godoc
// @Summary File transfer order
// @Description Files a pending transfer order with a freshly minted order number. Branch managers can only transfer staff out of their own branch.
// @Tags transfer-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateTransferOrderRequest true "Transfer details"
// @Success 201 {object} dto.TransferOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfer-orders [post]
func (h *TransferOrderHandler) CreateTransferOrder(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateTransferOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.transferOrderService.CreateTransferOrder(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferOrderResponse(order))
}

// ListTransferOrders godoc
// @Summary List transfer orders
// @Description Lists transfer orders, optionally filtered by status or origin branch. Branch managers only see orders out of their own branch.
// @Tags transfer-orders
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Param branchID query int false "Origin branch ID"
// @Success 200 {array} dto.TransferOrderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfer-orders [get]
func (h *TransferOrderHandler) ListTransferOrders(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.ListTransferOrderParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.transferOrderService.ListTransferOrders(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransferOrderResponse(orders))
}

// GetTransferOrder godoc
// @Summary Get transfer order by ID
// @Tags transfer-orders
// @Produce json
// @Param id path int true "Transfer order ID"
// @Success 200 {object} dto.TransferOrderResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfer-orders/{id} [get]
func (h *TransferOrderHandler) GetTransferOrder(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.transferOrderService.GetTransferOrderByID(c.Request.Context(), actor, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferOrderResponse(order))
}

// ApproveTransferOrder godoc
// @Summary Approve transfer order
// @Description Moves a pending transfer order to Approved. Admin only.
// @Tags transfer-orders
// @Produce json
// @Param id path int true "Transfer order ID"
// @Success 200 {object} dto.TransferOrderResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfer-orders/{id}/approve [post]
func (h *TransferOrderHandler) ApproveTransferOrder(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.transferOrderService.ApproveTransferOrder(c.Request.Context(), actor, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferOrderResponse(order))
}

// RejectTransferOrder godoc
// @Summary Reject transfer order
// @Description Moves a pending transfer order to Rejected with a reason. Admin only.
// @Tags transfer-orders
// @Accept json
// @Produce json
// @Param id path int true "Transfer order ID"
// @Param rejection body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.TransferOrderResponse
// @Failure 400 {object} ErrorResponse "Not found or not pending"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfer-orders/{id}/reject [post]
func (h *TransferOrderHandler) RejectTransferOrder(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rejection reason is required"})
		return
	}

	order, err := h.transferOrderService.RejectTransferOrder(c.Request.Context(), actor, orderID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferOrderResponse(order))
}

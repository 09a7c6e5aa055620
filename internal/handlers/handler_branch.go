package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/middleware"
)

// BranchHandler handles branch office requests.
type BranchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(bs portssvc.BranchSvcFacade) *BranchHandler {
	return &BranchHandler{branchService: bs}
}

// registerBranchRoutes sets up the routes for branch management. Reads are
// open to any authenticated user; writes are admin only.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := NewBranchHandler(branchService)

	branches := rg.Group("/branches")
	{
		branches.GET("", h.ListBranches)
		branches.GET("/:id", h.GetBranch)

		adminOnly := branches.Group("", middleware.RequireRole(domain.RoleAdmin))
		adminOnly.POST("", h.CreateBranch)
		adminOnly.PUT("/:id", h.UpdateBranch)
		adminOnly.DELETE("/:id", h.DeleteBranch)
	}
}

// ListBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {array} dto.BranchResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListBranchResponse(branches))
}

// GetBranch godoc
// @Summary Get branch by ID
// @Tags branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	branchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// CreateBranch godoc
// @Summary Create branch
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// UpdateBranch godoc
// @Summary Update branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	branchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), branchID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// DeleteBranch godoc
// @Summary Delete branch
// @Description Removes a branch that no staff or transfer order references.
// @Tags branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	branchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.branchService.DeleteBranch(c.Request.Context(), branchID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

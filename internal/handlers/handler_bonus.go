package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// BonusHandler handles per-branch bonus sheet endpoints.
type BonusHandler struct {
	bonusService portssvc.BonusSvcFacade
}

// NewBonusHandler creates a new BonusHandler.
func NewBonusHandler(bs portssvc.BonusSvcFacade) *BonusHandler {
	return &BonusHandler{bonusService: bs}
}

// registerBonusRoutes sets up the bonus sheet routes.
func registerBonusRoutes(rg *gin.RouterGroup, bonusService portssvc.BonusSvcFacade) {
	h := NewBonusHandler(bonusService)

	bonus := rg.Group("/bonus-runs")
	{
		bonus.GET("", h.GetBonusRun)
		bonus.PUT("", h.SaveBonusRun)
	}
}

// GetBonusRun godoc
// @Summary Get bonus sheet
// @Description Returns the bonus run for a branch and month together with its lines, creating an empty run when none exists. Branch managers can only read their own branch.
// @Tags bonus-runs
// @Produce json
// @Param branchID query int true "Branch ID"
// @Param month query string true "Bonus month (2006-01)"
// @Success 200 {object} dto.BonusRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bonus-runs [get]
func (h *BonusHandler) GetBonusRun(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.GetBonusRunParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "branchID and month are required"})
		return
	}

	run, lines, err := h.bonusService.GetBonusRun(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBonusRunResponse(run, lines))
}

// SaveBonusRun godoc
// @Summary Save bonus sheet
// @Description Upserts a branch bonus sheet and its per-employee lines. Branch managers can only write their own branch.
// @Tags bonus-runs
// @Accept json
// @Produce json
// @Param run body dto.SaveBonusRunRequest true "Bonus sheet"
// @Success 200 {object} dto.BonusRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /bonus-runs [put]
func (h *BonusHandler) SaveBonusRun(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.SaveBonusRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	run, lines, err := h.bonusService.SaveBonusRun(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBonusRunResponse(run, lines))
}

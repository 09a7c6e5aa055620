package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pvfc/payroll_backoffice_app/internal/core/ports/services"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// StaffHandler handles employee record requests.
type StaffHandler struct {
	staffService portssvc.StaffSvcFacade
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss portssvc.StaffSvcFacade) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// registerStaffRoutes sets up the routes for staff records. Branch scoping is
// enforced in the service layer, so the routes stay open to both roles.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := NewStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.CreateStaff)
		staff.GET("", h.ListStaff)
		staff.GET("/:id", h.GetStaff)
		staff.PUT("/:id", h.UpdateStaff)
		staff.DELETE("/:id", h.DeleteStaff)
		staff.POST("/:id/photo", h.UploadPhoto)
		staff.GET("/:id/attachments", h.ListAttachments)
		staff.POST("/:id/attachments", h.UploadAttachment)
		staff.DELETE("/:id/attachments/:attachmentID", h.DeleteAttachment)
	}
}

// CreateStaff godoc
// @Summary Create staff record
// @Description Creates an employee record and its zeroed balance row. Branch managers can only create staff in their own branch.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// ListStaff godoc
// @Summary List staff records
// @Description Lists employees, optionally filtered by branch, status or a name search. Branch managers only see their own branch.
// @Tags staff
// @Produce json
// @Param branchID query int false "Branch ID"
// @Param status query string false "Employment status"
// @Param area query string false "Area"
// @Param search query string false "Name search"
// @Success 200 {array} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var params dto.ListStaffParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	staff, err := h.staffService.ListStaff(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// GetStaff godoc
// @Summary Get staff record by ID
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.StaffResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	staff, err := h.staffService.GetStaffByID(c.Request.Context(), actor, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// UpdateStaff godoc
// @Summary Update staff record
// @Description Updates an employee record. Changing the branch assignment is admin only; managers use transfer orders instead.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [put]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), actor, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// DeleteStaff godoc
// @Summary Delete staff record
// @Description Removes an employee record and its balance row. Admin only; fails when other records still reference the employee.
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), actor, staffID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto godoc
// @Summary Upload staff photo
// @Description Stores an employee photo (jpg, jpeg or png, max 2MB) and records its URL.
// @Tags staff
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Staff ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id}/photo [post]
func (h *StaffHandler) UploadPhoto(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo file is required"})
		return
	}

	staff, err := h.staffService.SavePhoto(c.Request.Context(), actor, staffID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// ListAttachments godoc
// @Summary List staff attachments
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {array} dto.StaffAttachmentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id}/attachments [get]
func (h *StaffHandler) ListAttachments(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.staffService.ListAttachments(c.Request.Context(), actor, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffAttachmentResponse(attachments))
}

// UploadAttachment godoc
// @Summary Upload staff attachment
// @Description Stores a document (pdf, doc, docx, xls, xlsx or image, max 10MB) against an employee record.
// @Tags staff
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Staff ID"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.StaffAttachmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id}/attachments [post]
func (h *StaffHandler) UploadAttachment(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "document file is required"})
		return
	}

	attachment, err := h.staffService.SaveAttachment(c.Request.Context(), actor, staffID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStaffAttachmentResponse(attachment))
}

// DeleteAttachment godoc
// @Summary Delete staff attachment
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Param attachmentID path int true "Attachment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{id}/attachments/{attachmentID} [delete]
func (h *StaffHandler) DeleteAttachment(c *gin.Context) {
	actor, ok := requirePrincipal(c)
	if !ok {
		return
	}

	staffID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachmentID, ok := parseIDParam(c, "attachmentID")
	if !ok {
		return
	}

	if err := h.staffService.DeleteAttachment(c.Request.Context(), actor, staffID, attachmentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

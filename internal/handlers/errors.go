package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP status codes. AppError messages
// are safe to surface; anything unrecognized becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	message := func(fallback string) string {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			return appErr.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message("invalid input")})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message("conflict")})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message("not found")})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message("already exists")})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// requirePrincipal pulls the authenticated principal off the request, writing
// a 401 when the auth middleware did not run.
func requirePrincipal(c *gin.Context) (domain.Principal, bool) {
	actor, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return domain.Principal{}, false
	}
	return actor, true
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

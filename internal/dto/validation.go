package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// Custom binding validations shared by the request DTOs. Registered once at
// package load so every gin binding call picks them up.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		switch domain.RoleFromString(fl.Field().String()) {
		case domain.RoleAdmin, domain.RoleBranchManager:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("approvalstatus", func(fl validator.FieldLevel) bool {
		switch domain.ApprovalStatus(fl.Field().String()) {
		case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
			return true
		}
		return false
	})
}

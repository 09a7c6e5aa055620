package services

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// AuthSvcFacade handles credential verification and token issuance.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT plus the user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

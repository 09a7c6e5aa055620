package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// principalCtxKey is the key under which the resolved principal is stored.
const principalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal from the
// request context. The boolean is false when auth middleware did not run.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	return GetPrincipalFromCtx(c.Request.Context())
}

// GetPrincipalFromCtx is the standard-context variant used by services.
func GetPrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	if ctx == nil {
		return domain.Principal{}, false
	}
	principal, ok := ctx.Value(principalCtxKey).(domain.Principal)
	return principal, ok
}

// WithPrincipal returns a context carrying the given principal. Used by the
// auth middleware and by tests that exercise scope checks directly.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

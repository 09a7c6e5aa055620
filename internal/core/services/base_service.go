package services

import (
	"context"
	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/middleware"
)

// scopedBranchID narrows a list filter to the actor's branch. Admins keep the
// requested branch; branch managers are pinned to their own. A manager with no
// assigned branch is scoped to nothing, never to every branch.
func scopedBranchID(actor domain.Principal, requested *int64) (*int64, error) {
	if !actor.IsBranchManager() {
		return requested, nil
	}
	if actor.BranchID == nil {
		return nil, apperrors.ErrForbidden
	}
	return actor.BranchID, nil
}

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

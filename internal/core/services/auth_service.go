package services

import (
	"context"
	"errors"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/platform/config"
	"github.com/pvfc/payroll_backoffice_app/internal/utils"
)

// AuthService verifies credentials and issues JWTs.
type AuthService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login verifies the credentials and returns a signed token plus the user.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "failed to look up user during login")
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(
		user.UserID,
		user.Username,
		string(user.Role),
		user.BranchID,
		s.cfg.JWTSecret,
		s.cfg.JWTExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		s.LogError(ctx, err, "failed to sign token", slog.Int64("user_id", user.UserID))
		return "", nil, err
	}

	s.LogInfo(ctx, "user logged in", slog.Int64("user_id", user.UserID), slog.String("role", string(user.Role)))
	return token, user, nil
}

package services

import (
	"context"
	"strings"

	"log/slog"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/utils"
)

// UserService manages back-office logins.
type UserService struct {
	BaseService
	userRepo   portsrepo.UserRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo, branchRepo: branchRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// validateRoleAndBranch normalizes the role and checks the branch assignment
// rules: branch managers need an existing branch, admins carry none.
func (s *UserService) validateRoleAndBranch(ctx context.Context, rawRole string, branchID *int64) (domain.Role, *int64, error) {
	role := domain.RoleFromString(rawRole)
	switch role {
	case domain.RoleAdmin:
		return role, nil, nil
	case domain.RoleBranchManager:
		if branchID == nil {
			return "", nil, apperrors.NewValidationError("branch managers require a branch assignment")
		}
		if _, err := s.branchRepo.FindBranchByID(ctx, *branchID); err != nil {
			return "", nil, apperrors.NewValidationError("assigned branch does not exist")
		}
		return role, branchID, nil
	default:
		return "", nil, apperrors.NewValidationError("unknown role")
	}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	role, branchID, err := s.validateRoleAndBranch(ctx, req.Role, req.BranchID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, err
	}

	user := domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Role:         role,
		BranchID:     branchID,
	}
	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "user created", slog.Int64("user_id", saved.UserID), slog.String("role", string(saved.Role)))
	return saved, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	// A blank password field means "keep the current one".
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 6 {
			return nil, apperrors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "failed to hash password")
			return nil, err
		}
		user.PasswordHash = hash
	}

	rawRole := string(user.Role)
	if req.Role != nil {
		rawRole = *req.Role
	}
	branchID := user.BranchID
	if req.BranchID != nil {
		branchID = req.BranchID
	}
	role, branchID, err := s.validateRoleAndBranch(ctx, rawRole, branchID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.BranchID = branchID

	return s.userRepo.UpdateUser(ctx, *user)
}

func (s *UserService) DeleteUser(ctx context.Context, actor domain.Principal, userID int64) error {
	if actor.UserID == userID {
		return apperrors.NewValidationError("cannot delete your own account")
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.LogInfo(ctx, "user deleted", slog.Int64("user_id", userID), slog.Int64("deleted_by", actor.UserID))
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/mapping"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `id, username, password, role, branch_id, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.ID,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.BranchID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ms []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, password, role, branch_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `;`
	saved, err := scanUser(r.Pool.QueryRow(ctx, query, m.Username, m.PasswordHash, m.Role, m.BranchID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	u := mapping.ToDomainUser(*saved)
	return &u, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET username = $2, password = $3, role = $4, branch_id = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `;`
	updated, err := scanUser(r.Pool.QueryRow(ctx, query, m.ID, m.Username, m.PasswordHash, m.Role, m.BranchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update user %d: %w", m.ID, err)
	}
	u := mapping.ToDomainUser(*updated)
	return &u, nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

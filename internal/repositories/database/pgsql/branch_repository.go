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

type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(db *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

func scanBranch(row pgx.Row) (*models.Branch, error) {
	var m models.Branch
	if err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Area); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID int64) (*domain.Branch, error) {
	query := `SELECT id, code, name, area FROM branches WHERE id = $1;`
	m, err := scanBranch(r.Pool.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find branch by ID %d: %w", branchID, err)
	}
	b := mapping.ToDomainBranch(*m)
	return &b, nil
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, code, name, area FROM branches ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var ms []models.Branch
	for rows.Next() {
		m, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}
	return mapping.ToDomainBranchSlice(ms), nil
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	m := mapping.ToModelBranch(branch)
	query := `
		INSERT INTO branches (code, name, area)
		VALUES ($1, $2, $3)
		RETURNING id, code, name, area;`
	saved, err := scanBranch(r.Pool.QueryRow(ctx, query, m.Code, m.Name, m.Area))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save branch: %w", err)
	}
	b := mapping.ToDomainBranch(*saved)
	return &b, nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) (*domain.Branch, error) {
	m := mapping.ToModelBranch(branch)
	query := `
		UPDATE branches
		SET code = $2, name = $3, area = $4
		WHERE id = $1
		RETURNING id, code, name, area;`
	updated, err := scanBranch(r.Pool.QueryRow(ctx, query, m.ID, m.Code, m.Name, m.Area))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update branch %d: %w", m.ID, err)
	}
	b := mapping.ToDomainBranch(*updated)
	return &b, nil
}

func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, branchID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM branches WHERE id = $1;`, branchID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewConflictError("branch is still referenced by staff or orders")
		}
		return fmt.Errorf("failed to delete branch %d: %w", branchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

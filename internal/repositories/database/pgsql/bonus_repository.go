package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/mapping"
)

type PgxBonusRepository struct {
	BaseRepository
}

func newPgxBonusRepository(db *pgxpool.Pool) portsrepo.BonusRepositoryFacade {
	return &PgxBonusRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BonusRepositoryFacade = (*PgxBonusRepository)(nil)

const bonusRunColumns = `id, branch_id, bonus_month, notes, created_at, updated_at`

func scanBonusRun(row pgx.Row) (*models.BonusRun, error) {
	var m models.BonusRun
	err := row.Scan(&m.ID, &m.BranchID, &m.BonusMonth, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBonusRepository) FindRun(ctx context.Context, branchID int64, month time.Time) (*domain.BonusRun, error) {
	query := `SELECT ` + bonusRunColumns + ` FROM bonus_runs WHERE branch_id = $1 AND bonus_month = $2;`
	m, err := scanBonusRun(r.Pool.QueryRow(ctx, query, branchID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bonus run for branch %d: %w", branchID, err)
	}
	d := mapping.ToDomainBonusRun(*m)
	return &d, nil
}

// GetOrCreateRun relies on the unique (branch_id, bonus_month) key: the
// insert yields the existing row's ID when a concurrent caller won the race.
func (r *PgxBonusRepository) GetOrCreateRun(ctx context.Context, branchID int64, month time.Time, notes *string) (*domain.BonusRun, error) {
	query := `
		INSERT INTO bonus_runs (branch_id, bonus_month, notes)
		VALUES ($1, $2, $3)
		ON CONFLICT (branch_id, bonus_month) DO UPDATE SET
			notes = COALESCE(EXCLUDED.notes, bonus_runs.notes),
			updated_at = NOW()
		RETURNING ` + bonusRunColumns + `;`
	m, err := scanBonusRun(r.Pool.QueryRow(ctx, query, branchID, month, notes))
	if err != nil {
		return nil, fmt.Errorf("failed to get or create bonus run for branch %d: %w", branchID, err)
	}
	d := mapping.ToDomainBonusRun(*m)
	return &d, nil
}

const bonusLineColumns = `id, bonus_run_id, staff_id, salary, month_13, month_14, month_15, created_at, updated_at`

func scanBonusLine(row pgx.Row) (*models.BonusLine, error) {
	var m models.BonusLine
	err := row.Scan(&m.ID, &m.BonusRunID, &m.StaffID, &m.Salary, &m.Month13, &m.Month14, &m.Month15, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBonusRepository) ListLines(ctx context.Context, bonusRunID int64) ([]domain.BonusLine, error) {
	query := `
		SELECT l.id, l.bonus_run_id, l.staff_id, l.salary, l.month_13, l.month_14, l.month_15, l.created_at, l.updated_at
		FROM bonus_lines l
		JOIN staff s ON s.id = l.staff_id
		WHERE l.bonus_run_id = $1
		ORDER BY s.fullname;`
	rows, err := r.Pool.Query(ctx, query, bonusRunID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus lines for run %d: %w", bonusRunID, err)
	}
	defer rows.Close()

	var ms []models.BonusLine
	for rows.Next() {
		m, err := scanBonusLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus line row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bonus line rows: %w", err)
	}
	return mapping.ToDomainBonusLineSlice(ms), nil
}

// UpsertLines writes all lines of a save in one transaction, keyed on
// (bonus_run_id, staff_id), so a sheet save is all-or-nothing.
func (r *PgxBonusRepository) UpsertLines(ctx context.Context, bonusRunID int64, lines []domain.BonusLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO bonus_lines (bonus_run_id, staff_id, salary, month_13, month_14, month_15)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (bonus_run_id, staff_id) DO UPDATE SET
			salary = EXCLUDED.salary,
			month_13 = EXCLUDED.month_13,
			month_14 = EXCLUDED.month_14,
			month_15 = EXCLUDED.month_15,
			updated_at = NOW();`
	for _, line := range lines {
		if _, err := tx.Exec(ctx, query,
			bonusRunID, line.StaffID, line.Salary, line.Month13, line.Month14, line.Month15,
		); err != nil {
			return fmt.Errorf("failed to upsert bonus line for staff %d: %w", line.StaffID, err)
		}
	}

	return r.Commit(ctx, tx)
}

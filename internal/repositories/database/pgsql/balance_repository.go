package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/mapping"
)

type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(db *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `b.id, b.staff_id, b.fullname, b.position,
	b.cbu, b.cashbond, b.salary_advance, b.motorcycle_loan, b.special_advance,
	b.cash_advance, b.other_receivable, b.staff_accounts_payable, b.updated_at`

func scanStaffBalance(row pgx.Row) (*models.StaffBalance, error) {
	var m models.StaffBalance
	err := row.Scan(
		&m.ID,
		&m.StaffID,
		&m.FullName,
		&m.Position,
		&m.CBU,
		&m.Cashbond,
		&m.SalaryAdvance,
		&m.MotorcycleLoan,
		&m.SpecialAdvance,
		&m.CashAdvance,
		&m.OtherReceivable,
		&m.StaffAccountsPayable,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBalanceRepository) FindBalanceByStaffID(ctx context.Context, staffID int64) (*domain.StaffBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM staff_balances b WHERE b.staff_id = $1;`
	m, err := scanStaffBalance(r.Pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance for staff %d: %w", staffID, err)
	}
	d := mapping.ToDomainStaffBalance(*m)
	return &d, nil
}

func (r *PgxBalanceRepository) ListBalances(ctx context.Context, branchID *int64) ([]domain.StaffBalance, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + balanceColumns + ` FROM staff_balances b`)

	var args []interface{}
	if branchID != nil {
		sb.WriteString(` JOIN staff s ON s.id = b.staff_id WHERE s.branch_id = $1`)
		args = append(args, *branchID)
	}
	sb.WriteString(" ORDER BY b.fullname;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	defer rows.Close()

	var ms []models.StaffBalance
	for rows.Next() {
		m, err := scanStaffBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return mapping.ToDomainStaffBalanceSlice(ms), nil
}

func (r *PgxBalanceRepository) UpdateBalance(ctx context.Context, balance domain.StaffBalance) (*domain.StaffBalance, error) {
	query := `
		UPDATE staff_balances AS b
		SET cbu = $2, cashbond = $3, salary_advance = $4, motorcycle_loan = $5,
			special_advance = $6, cash_advance = $7, other_receivable = $8,
			updated_at = NOW()
		WHERE staff_id = $1
		RETURNING ` + balanceColumns + `;`
	m, err := scanStaffBalance(r.Pool.QueryRow(ctx, query,
		balance.EmployeeID,
		balance.CBU, balance.Cashbond, balance.SalaryAdvance, balance.MotorcycleLoan,
		balance.SpecialAdvance, balance.CashAdvance, balance.OtherReceivable,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update balance for staff %d: %w", balance.EmployeeID, err)
	}
	d := mapping.ToDomainStaffBalance(*m)
	return &d, nil
}

const payableColumns = `p.id, p.staff_id, p.staff_name, p.description, p.amount, p.term, p.per_month, p.balance, p.entry_date`

func scanPayable(row pgx.Row) (*models.Payable, error) {
	var m models.Payable
	err := row.Scan(
		&m.ID,
		&m.StaffID,
		&m.StaffName,
		&m.Description,
		&m.Amount,
		&m.Term,
		&m.PerMonth,
		&m.Balance,
		&m.EntryDate,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBalanceRepository) SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error) {
	query := `
		INSERT INTO staff_accounts_payable AS p (staff_id, staff_name, description, amount, term, per_month, balance, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + payableColumns + `;`
	m, err := scanPayable(r.Pool.QueryRow(ctx, query,
		payable.EmployeeID, payable.StaffName, payable.Description,
		payable.Amount, payable.TermMonths, payable.PerMonth, payable.Balance, payable.EntryDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to save payable for staff %d: %w", payable.EmployeeID, err)
	}
	d := mapping.ToDomainPayable(*m)
	return &d, nil
}

func (r *PgxBalanceRepository) ListPayables(ctx context.Context, staffID *int64, branchID *int64) ([]domain.Payable, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + payableColumns + ` FROM staff_accounts_payable p`)

	var conds []string
	var args []interface{}
	if branchID != nil {
		sb.WriteString(` JOIN staff s ON s.id = p.staff_id`)
		args = append(args, *branchID)
		conds = append(conds, "s.branch_id = $"+strconv.Itoa(len(args)))
	}
	if staffID != nil {
		args = append(args, *staffID)
		conds = append(conds, "p.staff_id = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY p.entry_date DESC, p.id DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	defer rows.Close()

	var ms []models.Payable
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", err)
	}
	return mapping.ToDomainPayableSlice(ms), nil
}

package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(db *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

// ListPayrollRows joins active staff with their balance row and the summed
// per-month deduction of payables that still carry a balance. Deduction per
// payable is capped at its remaining balance so the last installment never
// overshoots.
func (r *PgxPayrollRepository) ListPayrollRows(ctx context.Context, branchID *int64, date time.Time) ([]domain.PayrollRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT s.id, s.employee_no, s.fullname, s.position, s.department, s.area, s.branch_id, s.regularization_date,
			s.salary, s.ecola, s.transportation,
			COALESCE(b.cbu, 0), COALESCE(b.cashbond, 0), COALESCE(b.salary_advance, 0),
			COALESCE(b.motorcycle_loan, 0), COALESCE(b.special_advance, 0), COALESCE(b.cash_advance, 0),
			COALESCE(b.other_receivable, 0),
			COALESCE(pay.deduction, 0)
		FROM staff s
		LEFT JOIN staff_balances b ON b.staff_id = s.id
		LEFT JOIN (
			SELECT staff_id, SUM(LEAST(per_month, balance)) AS deduction
			FROM staff_accounts_payable
			WHERE balance > 0
			GROUP BY staff_id
		) pay ON pay.staff_id = s.id
		WHERE s.status = $1`)

	args := []interface{}{string(domain.StaffActive)}
	if branchID != nil {
		args = append(args, *branchID)
		sb.WriteString(" AND s.branch_id = $2")
	}
	sb.WriteString(" ORDER BY s.fullname;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll rows: %w", err)
	}
	defer rows.Close()

	var result []domain.PayrollRow
	for rows.Next() {
		var row domain.PayrollRow
		err := rows.Scan(
			&row.StaffID,
			&row.EmployeeNo,
			&row.FullName,
			&row.Position,
			&row.Department,
			&row.Area,
			&row.BranchID,
			&row.RegularizationDate,
			&row.Salary,
			&row.Ecola,
			&row.Transportation,
			&row.CBU,
			&row.Cashbond,
			&row.SalaryAdvance,
			&row.MotorcycleLoan,
			&row.SpecialAdvance,
			&row.CashAdvance,
			&row.OtherReceivable,
			&row.PayableDeduction,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		row.PayrollDate = date
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll rows: %w", err)
	}
	return result, nil
}

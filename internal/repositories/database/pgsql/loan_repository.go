package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/mapping"
)

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(db *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

const loanColumns = `lr.id, lr.employee_id, lr.staff_name, lr.loan_type, lr.reason,
	lr.amount, lr.interest, lr.term, lr.total, lr.per_month,
	lr.status, lr.approved_by, lr.approved_at, lr.rejected_by, lr.rejected_at, lr.rejection_reason,
	lr.disbursement_date, lr.created_at`

func scanLoanRequest(row pgx.Row) (*models.LoanRequest, error) {
	var m models.LoanRequest
	err := row.Scan(
		&m.ID,
		&m.EmployeeID,
		&m.StaffName,
		&m.LoanType,
		&m.Reason,
		&m.Amount,
		&m.Interest,
		&m.Term,
		&m.Total,
		&m.PerMonth,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.DisbursementDate,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxLoanRepository) SaveLoanRequest(ctx context.Context, request domain.LoanRequest) (*domain.LoanRequest, error) {
	query := `
		INSERT INTO loan_requests AS lr (employee_id, staff_name, loan_type, reason, amount, interest, term, total, per_month, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + loanColumns + `;`
	m, err := scanLoanRequest(r.Pool.QueryRow(ctx, query,
		request.EmployeeID, request.StaffName, request.LoanType, request.Reason,
		request.Amount, request.Interest, request.TermMonths, request.Total, request.PerMonth,
		string(domain.StatusPending),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save loan request: %w", err)
	}
	d := mapping.ToDomainLoanRequest(*m)
	return &d, nil
}

func (r *PgxLoanRepository) FindLoanRequestByID(ctx context.Context, loanRequestID int64) (*domain.LoanRequest, error) {
	query := `SELECT ` + loanColumns + ` FROM loan_requests lr WHERE lr.id = $1;`
	m, err := scanLoanRequest(r.Pool.QueryRow(ctx, query, loanRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan request %d: %w", loanRequestID, err)
	}
	d := mapping.ToDomainLoanRequest(*m)
	return &d, nil
}

// ListLoanRequests filters by status and, through the staff table, by the
// employee's current branch.
func (r *PgxLoanRepository) ListLoanRequests(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.LoanRequest, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + loanColumns + ` FROM loan_requests lr`)

	var conds []string
	var args []interface{}
	if filter.BranchID != nil {
		sb.WriteString(` JOIN staff s ON s.id = lr.employee_id`)
		args = append(args, *filter.BranchID)
		conds = append(conds, "s.branch_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, "lr.status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY lr.created_at DESC, lr.id DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan requests: %w", err)
	}
	defer rows.Close()

	var ms []models.LoanRequest
	for rows.Next() {
		m, err := scanLoanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan request row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan request rows: %w", err)
	}
	return mapping.ToDomainLoanRequestSlice(ms), nil
}

// ApproveLoanRequest also stamps the disbursement date on first approval.
func (r *PgxLoanRepository) ApproveLoanRequest(ctx context.Context, loanRequestID int64, approverID int64) (*domain.LoanRequest, error) {
	query := `
		UPDATE loan_requests AS lr
		SET status = $3,
			approved_by = $2,
			approved_at = COALESCE(approved_at, NOW()),
			disbursement_date = COALESCE(disbursement_date, NOW()),
			rejected_by = NULL,
			rejected_at = NULL,
			rejection_reason = NULL
		WHERE id = $1 AND status = $4
		RETURNING ` + loanColumns + `;`
	m, err := scanLoanRequest(r.Pool.QueryRow(ctx, query,
		loanRequestID, approverID, string(domain.StatusApproved), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("loan request not found or not pending")
		}
		return nil, fmt.Errorf("failed to approve loan request %d: %w", loanRequestID, err)
	}
	d := mapping.ToDomainLoanRequest(*m)
	return &d, nil
}

func (r *PgxLoanRepository) RejectLoanRequest(ctx context.Context, loanRequestID int64, rejecterID int64, reason string) (*domain.LoanRequest, error) {
	query := `
		UPDATE loan_requests AS lr
		SET status = $4,
			rejected_by = $2,
			rejected_at = COALESCE(rejected_at, NOW()),
			rejection_reason = $3,
			approved_by = NULL,
			approved_at = NULL
		WHERE id = $1 AND status = $5
		RETURNING ` + loanColumns + `;`
	m, err := scanLoanRequest(r.Pool.QueryRow(ctx, query,
		loanRequestID, rejecterID, reason, string(domain.StatusRejected), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("loan request not found or not pending")
		}
		return nil, fmt.Errorf("failed to reject loan request %d: %w", loanRequestID, err)
	}
	d := mapping.ToDomainLoanRequest(*m)
	return &d, nil
}

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

type PgxLeaveRepository struct {
	BaseRepository
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

const leaveColumns = `lr.id, lr.employee_id, lr.staff_name, lr.leave_type, lr.start_date, lr.end_date,
	lr.status, lr.approved_by, lr.approved_at, lr.rejected_by, lr.rejected_at, lr.rejection_reason, lr.created_at`

func scanLeaveRequest(row pgx.Row) (*models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.ID,
		&m.EmployeeID,
		&m.StaffName,
		&m.LeaveType,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxLeaveRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (*domain.LeaveRequest, error) {
	query := `
		INSERT INTO leave_requests AS lr (employee_id, staff_name, leave_type, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + leaveColumns + `;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query,
		request.EmployeeID, request.StaffName, request.LeaveType,
		request.StartDate, request.EndDate, string(domain.StatusPending),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}
	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

func (r *PgxLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID int64) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests lr WHERE lr.id = $1;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query, leaveRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request %d: %w", leaveRequestID, err)
	}
	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

// ListLeaveRequests filters by status and, through the staff table, by the
// employee's current branch.
func (r *PgxLeaveRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.LeaveRequest, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + leaveColumns + ` FROM leave_requests lr`)

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
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var ms []models.LeaveRequest
	for rows.Next() {
		m, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave request rows: %w", err)
	}
	return mapping.ToDomainLeaveRequestSlice(ms), nil
}

func (r *PgxLeaveRepository) ApproveLeaveRequest(ctx context.Context, leaveRequestID int64, approverID int64) (*domain.LeaveRequest, error) {
	query := `
		UPDATE leave_requests AS lr
		SET status = $3,
			approved_by = $2,
			approved_at = COALESCE(approved_at, NOW()),
			rejected_by = NULL,
			rejected_at = NULL,
			rejection_reason = NULL
		WHERE id = $1 AND status = $4
		RETURNING ` + leaveColumns + `;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query,
		leaveRequestID, approverID, string(domain.StatusApproved), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("leave request not found or not pending")
		}
		return nil, fmt.Errorf("failed to approve leave request %d: %w", leaveRequestID, err)
	}
	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

func (r *PgxLeaveRepository) RejectLeaveRequest(ctx context.Context, leaveRequestID int64, rejecterID int64, reason string) (*domain.LeaveRequest, error) {
	query := `
		UPDATE leave_requests AS lr
		SET status = $4,
			rejected_by = $2,
			rejected_at = COALESCE(rejected_at, NOW()),
			rejection_reason = $3,
			approved_by = NULL,
			approved_at = NULL
		WHERE id = $1 AND status = $5
		RETURNING ` + leaveColumns + `;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query,
		leaveRequestID, rejecterID, reason, string(domain.StatusRejected), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("leave request not found or not pending")
		}
		return nil, fmt.Errorf("failed to reject leave request %d: %w", leaveRequestID, err)
	}
	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

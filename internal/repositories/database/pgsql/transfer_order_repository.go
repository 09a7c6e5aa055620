package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/mapping"
)

type PgxTransferOrderRepository struct {
	BaseRepository
	sequences portsrepo.OrderSequenceAllocator
}

func newPgxTransferOrderRepository(db *pgxpool.Pool, sequences portsrepo.OrderSequenceAllocator) portsrepo.TransferOrderRepositoryFacade {
	return &PgxTransferOrderRepository{
		BaseRepository: BaseRepository{Pool: db},
		sequences:      sequences,
	}
}

var _ portsrepo.TransferOrderRepositoryFacade = (*PgxTransferOrderRepository)(nil)

const transferOrderColumns = `id, order_no, employee_id, employee_name,
	prev_branch_id, prev_branch_code, prev_branch_name,
	to_branch_id, to_branch_code, to_branch_name,
	area, division, date_created, effective_date, details,
	status, approved_by, approved_at, rejected_by, rejected_at, rejection_reason,
	created_by, created_at`

func scanTransferOrder(row pgx.Row) (*models.TransferOrder, error) {
	var m models.TransferOrder
	err := row.Scan(
		&m.ID,
		&m.OrderNo,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.PrevBranchID,
		&m.PrevBranchCode,
		&m.PrevBranchName,
		&m.ToBranchID,
		&m.ToBranchCode,
		&m.ToBranchName,
		&m.Area,
		&m.Division,
		&m.DateCreated,
		&m.EffectiveDate,
		&m.Details,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransferOrder mints the order number and inserts the order in one
// transaction. The counter advance commits only when the order does, so the
// stored numbers stay gap-free.
func (r *PgxTransferOrderRepository) SaveTransferOrder(ctx context.Context, order domain.TransferOrder) (*domain.TransferOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// The counter is keyed by the wall clock at mint time, never by the
	// client-supplied date_created: a backdated request must not reopen an
	// old month's sequence.
	orderNo, err := r.sequences.NextOrderNo(ctx, tx, domain.TransferOrderPrefix, time.Now())
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO transfer_staff_orders (order_no, employee_id, employee_name,
			prev_branch_id, prev_branch_code, prev_branch_name,
			to_branch_id, to_branch_code, to_branch_name,
			area, division, date_created, effective_date, details, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + transferOrderColumns + `;`
	saved, err := scanTransferOrder(tx.QueryRow(ctx, query,
		orderNo, order.EmployeeID, order.EmployeeName,
		order.PrevBranchID, order.PrevBranchCode, order.PrevBranchName,
		order.ToBranchID, order.ToBranchCode, order.ToBranchName,
		order.Area, order.Division, order.DateCreated, order.EffectiveDate, order.Details,
		string(domain.StatusPending), order.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save transfer order %s: %w", orderNo, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	d := mapping.ToDomainTransferOrder(*saved)
	return &d, nil
}

func (r *PgxTransferOrderRepository) FindTransferOrderByID(ctx context.Context, transferOrderID int64) (*domain.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_staff_orders WHERE id = $1;`
	m, err := scanTransferOrder(r.Pool.QueryRow(ctx, query, transferOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer order %d: %w", transferOrderID, err)
	}
	d := mapping.ToDomainTransferOrder(*m)
	return &d, nil
}

func (r *PgxTransferOrderRepository) ListTransferOrders(ctx context.Context, filter portsrepo.WorkflowListFilter) ([]domain.TransferOrder, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transferOrderColumns + ` FROM transfer_staff_orders`)

	var conds []string
	var args []interface{}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conds = append(conds, "prev_branch_id = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer orders: %w", err)
	}
	defer rows.Close()

	var ms []models.TransferOrder
	for rows.Next() {
		m, err := scanTransferOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer order row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer order rows: %w", err)
	}
	return mapping.ToDomainTransferOrderSlice(ms), nil
}

// ApproveTransferOrder transitions Pending -> Approved with a conditional
// update. Zero rows back means the order is missing or already resolved; the
// two cases are deliberately not told apart.
func (r *PgxTransferOrderRepository) ApproveTransferOrder(ctx context.Context, transferOrderID int64, approverID int64) (*domain.TransferOrder, error) {
	query := `
		UPDATE transfer_staff_orders
		SET status = $3,
			approved_by = $2,
			approved_at = COALESCE(approved_at, NOW()),
			rejected_by = NULL,
			rejected_at = NULL,
			rejection_reason = NULL
		WHERE id = $1 AND status = $4
		RETURNING ` + transferOrderColumns + `;`
	m, err := scanTransferOrder(r.Pool.QueryRow(ctx, query,
		transferOrderID, approverID, string(domain.StatusApproved), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("transfer order not found or not pending")
		}
		return nil, fmt.Errorf("failed to approve transfer order %d: %w", transferOrderID, err)
	}
	d := mapping.ToDomainTransferOrder(*m)
	return &d, nil
}

// RejectTransferOrder transitions Pending -> Rejected, mirroring approval.
func (r *PgxTransferOrderRepository) RejectTransferOrder(ctx context.Context, transferOrderID int64, rejecterID int64, reason string) (*domain.TransferOrder, error) {
	query := `
		UPDATE transfer_staff_orders
		SET status = $4,
			rejected_by = $2,
			rejected_at = COALESCE(rejected_at, NOW()),
			rejection_reason = $3,
			approved_by = NULL,
			approved_at = NULL
		WHERE id = $1 AND status = $5
		RETURNING ` + transferOrderColumns + `;`
	m, err := scanTransferOrder(r.Pool.QueryRow(ctx, query,
		transferOrderID, rejecterID, reason, string(domain.StatusRejected), string(domain.StatusPending),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError("transfer order not found or not pending")
		}
		return nil, fmt.Errorf("failed to reject transfer order %d: %w", transferOrderID, err)
	}
	d := mapping.ToDomainTransferOrder(*m)
	return &d, nil
}

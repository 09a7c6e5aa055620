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

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `id, employee_no, fullname, position, department, area, branch_id,
	salary, ecola, transportation, postage,
	motorcycle_loan, additional_target, repairing, additional_monitoring, motorcycle, other_deduction,
	regularization_date, status, photo_url`

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var m models.Staff
	err := row.Scan(
		&m.ID,
		&m.EmployeeNo,
		&m.FullName,
		&m.Position,
		&m.Department,
		&m.Area,
		&m.BranchID,
		&m.Salary,
		&m.Ecola,
		&m.Transportation,
		&m.Postage,
		&m.MotorcycleLoan,
		&m.AdditionalTarget,
		&m.Repairing,
		&m.AdditionalMonitoring,
		&m.Motorcycle,
		&m.OtherDeduction,
		&m.RegularizationDate,
		&m.Status,
		&m.PhotoURL,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID int64) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1;`
	m, err := scanStaff(r.Pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff by ID %d: %w", staffID, err)
	}
	s := mapping.ToDomainStaff(*m)
	return &s, nil
}

func (r *PgxStaffRepository) ListStaff(ctx context.Context, filter portsrepo.StaffListFilter) ([]domain.Staff, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + staffColumns + ` FROM staff`)

	var conds []string
	var args []interface{}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conds = append(conds, "branch_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Area != nil && strings.TrimSpace(*filter.Area) != "" {
		args = append(args, strings.TrimSpace(*filter.Area))
		conds = append(conds, "area = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(*filter.Search)+"%")
		conds = append(conds, "fullname ILIKE $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY fullname;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var ms []models.Staff
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return mapping.ToDomainStaffSlice(ms), nil
}

// SaveStaff inserts the staff row and its zeroed balance row in one
// transaction so no staff member can exist without a balance record.
func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	m := mapping.ToModelStaff(staff)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO staff (employee_no, fullname, position, department, area, branch_id,
			salary, ecola, transportation, postage,
			motorcycle_loan, additional_target, repairing, additional_monitoring, motorcycle, other_deduction,
			regularization_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + staffColumns + `;`
	saved, err := scanStaff(tx.QueryRow(ctx, query,
		m.EmployeeNo, m.FullName, m.Position, m.Department, m.Area, m.BranchID,
		m.Salary, m.Ecola, m.Transportation, m.Postage,
		m.MotorcycleLoan, m.AdditionalTarget, m.Repairing, m.AdditionalMonitoring, m.Motorcycle, m.OtherDeduction,
		m.RegularizationDate, m.Status,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save staff: %w", err)
	}

	balanceQuery := `
		INSERT INTO staff_balances (staff_id, fullname, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (staff_id) DO NOTHING;`
	if _, err := tx.Exec(ctx, balanceQuery, saved.ID, saved.FullName, saved.Position); err != nil {
		return nil, fmt.Errorf("failed to create balance row for staff %d: %w", saved.ID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s := mapping.ToDomainStaff(*saved)
	return &s, nil
}

// UpdateStaff updates the staff row and keeps the balance row's fullname and
// position columns in sync within the same transaction.
func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error) {
	m := mapping.ToModelStaff(staff)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE staff
		SET employee_no = $2, fullname = $3, position = $4, department = $5, area = $6, branch_id = $7,
			salary = $8, ecola = $9, transportation = $10, postage = $11,
			motorcycle_loan = $12, additional_target = $13, repairing = $14,
			additional_monitoring = $15, motorcycle = $16, other_deduction = $17,
			regularization_date = $18, status = $19
		WHERE id = $1
		RETURNING ` + staffColumns + `;`
	updated, err := scanStaff(tx.QueryRow(ctx, query,
		m.ID, m.EmployeeNo, m.FullName, m.Position, m.Department, m.Area, m.BranchID,
		m.Salary, m.Ecola, m.Transportation, m.Postage,
		m.MotorcycleLoan, m.AdditionalTarget, m.Repairing, m.AdditionalMonitoring, m.Motorcycle, m.OtherDeduction,
		m.RegularizationDate, m.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update staff %d: %w", m.ID, err)
	}

	syncQuery := `
		INSERT INTO staff_balances (staff_id, fullname, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (staff_id) DO UPDATE SET
			fullname = EXCLUDED.fullname,
			position = EXCLUDED.position,
			updated_at = NOW();`
	if _, err := tx.Exec(ctx, syncQuery, updated.ID, updated.FullName, updated.Position); err != nil {
		return nil, fmt.Errorf("failed to sync balance row for staff %d: %w", updated.ID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s := mapping.ToDomainStaff(*updated)
	return &s, nil
}

func (r *PgxStaffRepository) SetStaffPhoto(ctx context.Context, staffID int64, photoURL string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE staff SET photo_url = $2 WHERE id = $1;`, staffID, photoURL)
	if err != nil {
		return fmt.Errorf("failed to set photo for staff %d: %w", staffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteStaff removes the balance row and the staff row in one transaction.
// Rows in other tables that still reference the employee veto the delete.
func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, staffID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM staff_balances WHERE staff_id = $1;`, staffID); err != nil {
		return fmt.Errorf("failed to delete balance row for staff %d: %w", staffID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM staff WHERE id = $1;`, staffID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewConflictError("staff is still referenced by requests, orders or payables")
		}
		return fmt.Errorf("failed to delete staff %d: %w", staffID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

const attachmentColumns = `id, staff_id, file_name, original_name, file_url, uploaded_by, uploaded_at`

func scanAttachment(row pgx.Row) (*models.StaffAttachment, error) {
	var m models.StaffAttachment
	err := row.Scan(&m.ID, &m.StaffID, &m.FileName, &m.OriginalName, &m.FileURL, &m.UploadedBy, &m.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxStaffRepository) SaveAttachment(ctx context.Context, attachment domain.StaffAttachment) (*domain.StaffAttachment, error) {
	query := `
		INSERT INTO staff_attachments (staff_id, file_name, original_name, file_url, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attachmentColumns + `;`
	m, err := scanAttachment(r.Pool.QueryRow(ctx, query,
		attachment.StaffID, attachment.FileName, attachment.OriginalName, attachment.FileURL, attachment.UploadedBy,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to save attachment for staff %d: %w", attachment.StaffID, err)
	}
	a := mapping.ToDomainStaffAttachment(*m)
	return &a, nil
}

func (r *PgxStaffRepository) ListAttachments(ctx context.Context, staffID int64) ([]domain.StaffAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM staff_attachments WHERE staff_id = $1 ORDER BY uploaded_at DESC;`
	rows, err := r.Pool.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments for staff %d: %w", staffID, err)
	}
	defer rows.Close()

	var ms []models.StaffAttachment
	for rows.Next() {
		m, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}
	return mapping.ToDomainStaffAttachmentSlice(ms), nil
}

func (r *PgxStaffRepository) FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.StaffAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM staff_attachments WHERE id = $1;`
	m, err := scanAttachment(r.Pool.QueryRow(ctx, query, attachmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attachment %d: %w", attachmentID, err)
	}
	a := mapping.ToDomainStaffAttachment(*m)
	return &a, nil
}

func (r *PgxStaffRepository) DeleteAttachment(ctx context.Context, attachmentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM staff_attachments WHERE id = $1;`, attachmentID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment %d: %w", attachmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

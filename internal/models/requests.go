package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveRequest mirrors the leave_requests table.
type LeaveRequest struct {
	ID         int64     `db:"id"`
	EmployeeID int64     `db:"employee_id"`
	StaffName  string    `db:"staff_name"`
	LeaveType  string    `db:"leave_type"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Status     string    `db:"status"`

	ApprovedBy      *int64     `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	RejectedBy      *int64     `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	RejectionReason *string    `db:"rejection_reason"`

	CreatedAt time.Time `db:"created_at"`
}

// LoanRequest mirrors the loan_requests table.
type LoanRequest struct {
	ID         int64           `db:"id"`
	EmployeeID int64           `db:"employee_id"`
	StaffName  string          `db:"staff_name"`
	LoanType   string          `db:"loan_type"`
	Reason     *string         `db:"reason"`
	Amount     decimal.Decimal `db:"amount"`
	Interest   decimal.Decimal `db:"interest"`
	Term       int             `db:"term"`
	Total      decimal.Decimal `db:"total"`
	PerMonth   decimal.Decimal `db:"per_month"`
	Status     string          `db:"status"`

	ApprovedBy      *int64     `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	RejectedBy      *int64     `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	RejectionReason *string    `db:"rejection_reason"`

	DisbursementDate *time.Time `db:"disbursement_date"`
	CreatedAt        time.Time  `db:"created_at"`
}

// TransferOrder mirrors the transfer_staff_orders table.
type TransferOrder struct {
	ID           int64  `db:"id"`
	OrderNo      string `db:"order_no"`
	EmployeeID   int64  `db:"employee_id"`
	EmployeeName string `db:"employee_name"`

	PrevBranchID   int64  `db:"prev_branch_id"`
	PrevBranchCode string `db:"prev_branch_code"`
	PrevBranchName string `db:"prev_branch_name"`
	ToBranchID     int64  `db:"to_branch_id"`
	ToBranchCode   string `db:"to_branch_code"`
	ToBranchName   string `db:"to_branch_name"`

	Area          string    `db:"area"`
	Division      string    `db:"division"`
	DateCreated   time.Time `db:"date_created"`
	EffectiveDate time.Time `db:"effective_date"`
	Details       string    `db:"details"`

	Status string `db:"status"`

	ApprovedBy      *int64     `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	RejectedBy      *int64     `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	RejectionReason *string    `db:"rejection_reason"`

	CreatedBy *int64    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff mirrors the staff table.
type Staff struct {
	ID         int64   `db:"id"`
	EmployeeNo *string `db:"employee_no"`
	FullName   string  `db:"fullname"`
	Position   string  `db:"position"`
	Department *string `db:"department"`
	Area       *string `db:"area"`
	BranchID   *int64  `db:"branch_id"`

	Salary         decimal.Decimal `db:"salary"`
	Ecola          decimal.Decimal `db:"ecola"`
	Transportation decimal.Decimal `db:"transportation"`
	Postage        decimal.Decimal `db:"postage"`

	MotorcycleLoan       decimal.Decimal `db:"motorcycle_loan"`
	AdditionalTarget     decimal.Decimal `db:"additional_target"`
	Repairing            decimal.Decimal `db:"repairing"`
	AdditionalMonitoring decimal.Decimal `db:"additional_monitoring"`
	Motorcycle           decimal.Decimal `db:"motorcycle"`
	OtherDeduction       decimal.Decimal `db:"other_deduction"`

	RegularizationDate *time.Time `db:"regularization_date"`
	Status             string     `db:"status"`
	PhotoURL           *string    `db:"photo_url"`
}

// StaffAttachment mirrors the staff_attachments table.
type StaffAttachment struct {
	ID           int64     `db:"id"`
	StaffID      int64     `db:"staff_id"`
	FileName     string    `db:"file_name"`
	OriginalName string    `db:"original_name"`
	FileURL      string    `db:"file_url"`
	UploadedBy   *int64    `db:"uploaded_by"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

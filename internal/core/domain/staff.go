package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StaffStatus is the employment state of a staff record.
type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffInactive StaffStatus = "Inactive"
)

// NormalizeStaffStatus coerces arbitrary input to a valid status, defaulting
// to Active the way the legacy data entry screens did.
func NormalizeStaffStatus(s string) StaffStatus {
	if strings.EqualFold(strings.TrimSpace(s), string(StaffInactive)) {
		return StaffInactive
	}
	return StaffActive
}

// Staff is an employee record with its pay components.
type Staff struct {
	StaffID    int64   `json:"id"`
	EmployeeNo *string `json:"employeeNo,omitempty"`
	FullName   string  `json:"fullname"`
	Position   string  `json:"position"`
	Department *string `json:"department,omitempty"`
	Area       *string `json:"area,omitempty"`
	BranchID   *int64  `json:"branchID,omitempty"`

	// Compensation
	Salary         decimal.Decimal `json:"salary"`
	Ecola          decimal.Decimal `json:"ecola"`
	Transportation decimal.Decimal `json:"transportation"`
	Postage        decimal.Decimal `json:"postage"`

	// Allowance / deduction components captured per employee
	MotorcycleLoan       decimal.Decimal `json:"motorcycleLoan"`
	AdditionalTarget     decimal.Decimal `json:"additionalTarget"`
	Repairing            decimal.Decimal `json:"repairing"`
	AdditionalMonitoring decimal.Decimal `json:"additionalMonitoring"`
	Motorcycle           decimal.Decimal `json:"motorcycle"`
	OtherDeduction       decimal.Decimal `json:"otherDeduction"`

	RegularizationDate *time.Time  `json:"regularizationDate,omitempty"`
	Status             StaffStatus `json:"status"`
	PhotoURL           *string     `json:"photoURL,omitempty"`
}

// StaffAttachment is a document filed against a staff record.
type StaffAttachment struct {
	AttachmentID int64     `json:"id"`
	StaffID      int64     `json:"staffID"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileURL      string    `json:"fileURL"`
	UploadedBy   *int64    `json:"uploadedBy,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffBalance mirrors the running deduction balances kept per employee.
// A zeroed row is created together with the staff record and the name and
// position columns are kept in sync on staff updates.
type StaffBalance struct {
	BalanceID  int64  `json:"id"`
	EmployeeID int64  `json:"employeeID"`
	FullName   string `json:"fullname"`
	Position   string `json:"position"`

	CBU                  decimal.Decimal `json:"cbu"`
	Cashbond             decimal.Decimal `json:"cashbond"`
	SalaryAdvance        decimal.Decimal `json:"salaryAdvance"`
	MotorcycleLoan       decimal.Decimal `json:"motorcycleLoan"`
	SpecialAdvance       decimal.Decimal `json:"specialAdvance"`
	CashAdvance          decimal.Decimal `json:"cashAdvance"`
	OtherReceivable      decimal.Decimal `json:"otherReceivable"`
	StaffAccountsPayable decimal.Decimal `json:"staffAccountsPayable"`

	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Payable is one staff-accounts-payable schedule entry. Balance counts down
// as payroll runs deduct PerMonth.
type Payable struct {
	PayableID   int64           `json:"id"`
	EmployeeID  int64           `json:"employeeID"`
	StaffName   string          `json:"staffName"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term"`
	PerMonth    decimal.Decimal `json:"perMonth"`
	Balance     decimal.Decimal `json:"balance"`
	EntryDate   time.Time       `json:"entryDate"`
}

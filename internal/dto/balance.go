package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateStaffBalanceRequest defines the balance columns an admin may set.
// Pointers distinguish omitted fields from explicit zero values.
type UpdateStaffBalanceRequest struct {
	CBU             *decimal.Decimal `json:"cbu"`
	Cashbond        *decimal.Decimal `json:"cashbond"`
	SalaryAdvance   *decimal.Decimal `json:"salaryAdvance"`
	MotorcycleLoan  *decimal.Decimal `json:"motorcycleLoan"`
	SpecialAdvance  *decimal.Decimal `json:"specialAdvance"`
	CashAdvance     *decimal.Decimal `json:"cashAdvance"`
	OtherReceivable *decimal.Decimal `json:"otherReceivable"`
}

// StaffBalanceResponse defines the data returned for a balance row.
type StaffBalanceResponse struct {
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

// CreatePayableRequest defines the data needed to open a payable schedule.
// The per-month figure is computed server side from amount and term.
type CreatePayableRequest struct {
	EmployeeID  int64           `json:"employeeID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	TermMonths  int             `json:"term" binding:"required,min=1"`
	EntryDate   *string         `json:"entryDate"` // 2006-01-02, defaults to today
}

// PayableResponse defines the data returned for a payable entry.
type PayableResponse struct {
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

// ToStaffBalanceResponse converts a domain.StaffBalance to its DTO.
func ToStaffBalanceResponse(b *domain.StaffBalance) StaffBalanceResponse {
	return StaffBalanceResponse{
		BalanceID:            b.BalanceID,
		EmployeeID:           b.EmployeeID,
		FullName:             b.FullName,
		Position:             b.Position,
		CBU:                  b.CBU,
		Cashbond:             b.Cashbond,
		SalaryAdvance:        b.SalaryAdvance,
		MotorcycleLoan:       b.MotorcycleLoan,
		SpecialAdvance:       b.SpecialAdvance,
		CashAdvance:          b.CashAdvance,
		OtherReceivable:      b.OtherReceivable,
		StaffAccountsPayable: b.StaffAccountsPayable,
		UpdatedAt:            b.UpdatedAt,
	}
}

// ToListStaffBalanceResponse converts a slice of domain.StaffBalance to DTOs.
func ToListStaffBalanceResponse(balances []domain.StaffBalance) []StaffBalanceResponse {
	res := make([]StaffBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = ToStaffBalanceResponse(&b)
	}
	return res
}

// ToPayableResponse converts a domain.Payable to its DTO.
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:   p.PayableID,
		EmployeeID:  p.EmployeeID,
		StaffName:   p.StaffName,
		Description: p.Description,
		Amount:      p.Amount,
		TermMonths:  p.TermMonths,
		PerMonth:    p.PerMonth,
		Balance:     p.Balance,
		EntryDate:   p.EntryDate,
	}
}

// ToListPayableResponse converts a slice of domain.Payable to DTOs.
func ToListPayableResponse(payables []domain.Payable) []PayableResponse {
	res := make([]PayableResponse, len(payables))
	for i, p := range payables {
		res[i] = ToPayableResponse(&p)
	}
	return res
}

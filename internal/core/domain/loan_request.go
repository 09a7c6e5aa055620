package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRequest is a staff loan application. Total and PerMonth are derived
// from amount, interest and term at submission time; the service recomputes
// them and never trusts client-supplied values.
type LoanRequest struct {
	LoanRequestID int64           `json:"id"`
	EmployeeID    int64           `json:"employeeID"`
	StaffName     string          `json:"staffName"`
	LoanType      string          `json:"loanType"`
	Reason        *string         `json:"reason,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Interest      decimal.Decimal `json:"interest"` // percent
	TermMonths    int             `json:"term"`
	Total         decimal.Decimal `json:"total"`
	PerMonth      decimal.Decimal `json:"perMonth"`
	Status        ApprovalStatus  `json:"status"`
	Resolution
	DisbursementDate *time.Time `json:"disbursementDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BonusRun is a per-branch, per-month bonus computation sheet. Runs are
// get-or-create on (BranchID, BonusMonth).
type BonusRun struct {
	BonusRunID int64      `json:"id"`
	BranchID   int64      `json:"branchID"`
	BonusMonth time.Time  `json:"bonusMonth"` // first day of the month
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// BonusLine is one employee's 13th/14th/15th month split within a run.
type BonusLine struct {
	BonusLineID int64           `json:"id"`
	BonusRunID  int64           `json:"bonusRunID"`
	StaffID     int64           `json:"staffID"`
	Salary      decimal.Decimal `json:"salary"`
	Month13     decimal.Decimal `json:"month13"`
	Month14     decimal.Decimal `json:"month14"`
	Month15     decimal.Decimal `json:"month15"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// Total is the summed bonus payout of a line.
func (l BonusLine) Total() decimal.Decimal {
	return l.Month13.Add(l.Month14).Add(l.Month15)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BonusRun mirrors the bonus_runs table. One run per branch per month.
type BonusRun struct {
	ID         int64      `db:"id"`
	BranchID   int64      `db:"branch_id"`
	BonusMonth time.Time  `db:"bonus_month"`
	Notes      *string    `db:"notes"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// BonusLine mirrors the bonus_lines table.
type BonusLine struct {
	ID         int64           `db:"id"`
	BonusRunID int64           `db:"bonus_run_id"`
	StaffID    int64           `db:"staff_id"`
	Salary     decimal.Decimal `db:"salary"`
	Month13    decimal.Decimal `db:"month_13"`
	Month14    decimal.Decimal `db:"month_14"`
	Month15    decimal.Decimal `db:"month_15"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  *time.Time      `db:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaffBalance mirrors the staff_balances table (one row per staff).
type StaffBalance struct {
	ID       int64  `db:"id"`
	StaffID  int64  `db:"staff_id"`
	FullName string `db:"fullname"`
	Position string `db:"position"`

	CBU                  decimal.Decimal `db:"cbu"`
	Cashbond             decimal.Decimal `db:"cashbond"`
	SalaryAdvance        decimal.Decimal `db:"salary_advance"`
	MotorcycleLoan       decimal.Decimal `db:"motorcycle_loan"`
	SpecialAdvance       decimal.Decimal `db:"special_advance"`
	CashAdvance          decimal.Decimal `db:"cash_advance"`
	OtherReceivable      decimal.Decimal `db:"other_receivable"`
	StaffAccountsPayable decimal.Decimal `db:"staff_accounts_payable"`

	UpdatedAt *time.Time `db:"updated_at"`
}

// Payable mirrors the staff_accounts_payable table.
type Payable struct {
	ID          int64           `db:"id"`
	StaffID     int64           `db:"staff_id"`
	StaffName   string          `db:"staff_name"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Term        int             `db:"term"`
	PerMonth    decimal.Decimal `db:"per_month"`
	Balance     decimal.Decimal `db:"balance"`
	EntryDate   time.Time       `db:"entry_date"`
}

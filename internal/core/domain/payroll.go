package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRow is one employee's computed payroll line: the staff record joined
// with balances and open payables, plus the derived totals. Statutory
// contribution columns are placeholders until the contribution tables exist.
type PayrollRow struct {
	StaffID            int64      `json:"id"`
	EmployeeNo         *string    `json:"employeeNo,omitempty"`
	FullName           string     `json:"fullname"`
	Position           string     `json:"position"`
	Department         *string    `json:"department,omitempty"`
	Area               *string    `json:"area,omitempty"`
	BranchID           *int64     `json:"branchID,omitempty"`
	RegularizationDate *time.Time `json:"regularizationDate,omitempty"`

	Salary         decimal.Decimal `json:"salary"`
	Ecola          decimal.Decimal `json:"ecola"`
	Transportation decimal.Decimal `json:"transportation"`

	CBU              decimal.Decimal `json:"cbu"`
	Cashbond         decimal.Decimal `json:"cashbond"`
	SalaryAdvance    decimal.Decimal `json:"salaryAdvance"`
	MotorcycleLoan   decimal.Decimal `json:"motorcycleLoan"`
	SpecialAdvance   decimal.Decimal `json:"specialAdvance"`
	CashAdvance      decimal.Decimal `json:"cashAdvance"`
	OtherReceivable  decimal.Decimal `json:"otherReceivable"`
	PayableDeduction decimal.Decimal `json:"staffAccountsPayable"`

	HDMFER decimal.Decimal `json:"hdmfER"`
	SSSER  decimal.Decimal `json:"sssER"`
	PHER   decimal.Decimal `json:"phER"`
	HDMFEE decimal.Decimal `json:"hdmfEE"`
	SSSEE  decimal.Decimal `json:"sssEE"`
	PHEE   decimal.Decimal `json:"phEE"`

	Tax           decimal.Decimal `json:"tax"`
	UtilityCharge decimal.Decimal `json:"utilityCharge"`
	PagibigMPL    decimal.Decimal `json:"pagibigMPL"`
	SSSLoan       decimal.Decimal `json:"sssLoan"`

	PayrollDate time.Time `json:"payrollDate"`

	// Derived
	TotalER        decimal.Decimal `json:"totalER"`
	TotalEE        decimal.Decimal `json:"totalEE"`
	TotalComp      decimal.Decimal `json:"totalComp"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetPay         decimal.Decimal `json:"netPay"`
}

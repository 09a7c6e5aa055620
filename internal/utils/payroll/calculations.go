// Package payroll holds the derived-money arithmetic in one place. The
// legacy system computed these sums independently in several route handlers
// and again in the frontend; this is the single canonical implementation.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// LoanSchedule derives the repayment total and monthly amortization from the
// principal, a flat interest percentage and the term in months.
// total = amount + amount*interest/100, per_month = total/term.
func LoanSchedule(amount, interest decimal.Decimal, termMonths int) (total, perMonth decimal.Decimal) {
	if termMonths < 1 {
		termMonths = 1
	}
	total = amount.Add(amount.Mul(interest).Div(hundred))
	perMonth = total.DivRound(decimal.NewFromInt(int64(termMonths)), 2)
	return total, perMonth
}

// PayableSchedule derives the monthly deduction of a staff-accounts-payable
// entry: amount spread evenly over the term.
func PayableSchedule(amount decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths < 1 {
		termMonths = 1
	}
	return amount.DivRound(decimal.NewFromInt(int64(termMonths)), 2)
}

// PayableDeduction clamps a scheduled monthly deduction to the remaining
// balance, never going negative.
func PayableDeduction(perMonth, balance decimal.Decimal) decimal.Decimal {
	d := decimal.Min(perMonth, balance)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ComputeTotals fills the derived columns of a payroll row:
//
//	total_er  = hdmf_er + sss_er + ph_er
//	total_ee  = hdmf_ee + sss_ee + ph_ee
//	total_comp = salary + ecola
//	total_deduction = total_ee + tax + utility + balances + loans + payables
//	net_pay = total_comp - total_deduction
func ComputeTotals(row *domain.PayrollRow) {
	row.TotalER = row.HDMFER.Add(row.SSSER).Add(row.PHER)
	row.TotalEE = row.HDMFEE.Add(row.SSSEE).Add(row.PHEE)
	row.TotalComp = row.Salary.Add(row.Ecola)

	row.TotalDeduction = row.TotalEE.
		Add(row.Tax).
		Add(row.UtilityCharge).
		Add(row.CBU).
		Add(row.Cashbond).
		Add(row.SalaryAdvance).
		Add(row.MotorcycleLoan).
		Add(row.SpecialAdvance).
		Add(row.CashAdvance).
		Add(row.OtherReceivable).
		Add(row.PagibigMPL).
		Add(row.SSSLoan).
		Add(row.PayableDeduction)

	row.NetPay = row.TotalComp.Sub(row.TotalDeduction)
}

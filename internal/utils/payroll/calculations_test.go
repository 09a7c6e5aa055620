package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/utils/payroll"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoanSchedule(t *testing.T) {
	total, perMonth := payroll.LoanSchedule(d("10000"), d("10"), 12)
	assert.True(t, total.Equal(d("11000")), "total = %s", total)
	assert.True(t, perMonth.Equal(d("916.67")), "perMonth = %s", perMonth)
}

func TestLoanScheduleZeroInterest(t *testing.T) {
	total, perMonth := payroll.LoanSchedule(d("5000"), decimal.Zero, 5)
	assert.True(t, total.Equal(d("5000")))
	assert.True(t, perMonth.Equal(d("1000")))
}

func TestLoanScheduleClampsTerm(t *testing.T) {
	// A zero or negative term is treated as a single month.
	total, perMonth := payroll.LoanSchedule(d("1200"), decimal.Zero, 0)
	assert.True(t, total.Equal(d("1200")))
	assert.True(t, perMonth.Equal(d("1200")))
}

func TestPayableSchedule(t *testing.T) {
	assert.True(t, payroll.PayableSchedule(d("3000"), 6).Equal(d("500")))
	assert.True(t, payroll.PayableSchedule(d("1000"), 0).Equal(d("1000")))
}

func TestPayableDeductionClampsToBalance(t *testing.T) {
	assert.True(t, payroll.PayableDeduction(d("500"), d("200")).Equal(d("200")))
	assert.True(t, payroll.PayableDeduction(d("500"), d("800")).Equal(d("500")))
	assert.True(t, payroll.PayableDeduction(d("-10"), d("800")).Equal(decimal.Zero))
}

func TestComputeTotals(t *testing.T) {
	row := &domain.PayrollRow{
		Salary:           d("20000"),
		Ecola:            d("1000"),
		HDMFEE:           d("100"),
		SSSEE:            d("450"),
		PHEE:             d("300"),
		HDMFER:           d("100"),
		SSSER:            d("900"),
		PHER:             d("300"),
		Tax:              d("500"),
		CBU:              d("200"),
		Cashbond:         d("100"),
		SalaryAdvance:    d("1000"),
		PayableDeduction: d("250"),
	}

	payroll.ComputeTotals(row)

	assert.True(t, row.TotalER.Equal(d("1300")), "totalER = %s", row.TotalER)
	assert.True(t, row.TotalEE.Equal(d("850")), "totalEE = %s", row.TotalEE)
	assert.True(t, row.TotalComp.Equal(d("21000")))
	// 850 + 500 + 200 + 100 + 1000 + 250
	assert.True(t, row.TotalDeduction.Equal(d("2900")), "totalDeduction = %s", row.TotalDeduction)
	assert.True(t, row.NetPay.Equal(d("18100")), "netPay = %s", row.NetPay)
}

func TestComputeTotalsZeroRow(t *testing.T) {
	row := &domain.PayrollRow{}
	payroll.ComputeTotals(row)
	assert.True(t, row.NetPay.IsZero())
	assert.True(t, row.TotalDeduction.IsZero())
}

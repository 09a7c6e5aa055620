package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPayrollParams defines query parameters for the payroll sheet.
type ListPayrollParams struct {
	BranchID *int64  `form:"branchID"`
	Date     *string `form:"date"` // 2006-01-02, defaults to today
}

// PayrollRowResponse is one computed payroll line.
type PayrollRowResponse struct {
	StaffID    int64   `json:"id"`
	EmployeeNo *string `json:"employeeNo,omitempty"`
	FullName   string  `json:"fullname"`
	Position   string  `json:"position"`
	Department *string `json:"department,omitempty"`
	Area       *string `json:"area,omitempty"`
	BranchID   *int64  `json:"branchID,omitempty"`

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

	TotalER        decimal.Decimal `json:"totalER"`
	TotalEE        decimal.Decimal `json:"totalEE"`
	TotalComp      decimal.Decimal `json:"totalComp"`
	TotalDeduction decimal.Decimal `json:"totalDeduction"`
	NetPay         decimal.Decimal `json:"netPay"`
}

// ToPayrollRowResponse converts a domain.PayrollRow to its DTO.
func ToPayrollRowResponse(r *domain.PayrollRow) PayrollRowResponse {
	return PayrollRowResponse{
		StaffID:          r.StaffID,
		EmployeeNo:       r.EmployeeNo,
		FullName:         r.FullName,
		Position:         r.Position,
		Department:       r.Department,
		Area:             r.Area,
		BranchID:         r.BranchID,
		Salary:           r.Salary,
		Ecola:            r.Ecola,
		Transportation:   r.Transportation,
		CBU:              r.CBU,
		Cashbond:         r.Cashbond,
		SalaryAdvance:    r.SalaryAdvance,
		MotorcycleLoan:   r.MotorcycleLoan,
		SpecialAdvance:   r.SpecialAdvance,
		CashAdvance:      r.CashAdvance,
		OtherReceivable:  r.OtherReceivable,
		PayableDeduction: r.PayableDeduction,
		HDMFER:           r.HDMFER,
		SSSER:            r.SSSER,
		PHER:             r.PHER,
		HDMFEE:           r.HDMFEE,
		SSSEE:            r.SSSEE,
		PHEE:             r.PHEE,
		Tax:              r.Tax,
		UtilityCharge:    r.UtilityCharge,
		PagibigMPL:       r.PagibigMPL,
		SSSLoan:          r.SSSLoan,
		PayrollDate:      r.PayrollDate,
		TotalER:          r.TotalER,
		TotalEE:          r.TotalEE,
		TotalComp:        r.TotalComp,
		TotalDeduction:   r.TotalDeduction,
		NetPay:           r.NetPay,
	}
}

// ToListPayrollResponse converts a slice of domain.PayrollRow to DTOs.
func ToListPayrollResponse(rows []domain.PayrollRow) []PayrollRowResponse {
	res := make([]PayrollRowResponse, len(rows))
	for i, r := range rows {
		res[i] = ToPayrollRowResponse(&r)
	}
	return res
}

package mapping

import (
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
)

// ToDomainStaffBalance converts a model StaffBalance to its domain form
func ToDomainStaffBalance(m models.StaffBalance) domain.StaffBalance {
	return domain.StaffBalance{
		BalanceID:            m.ID,
		EmployeeID:           m.StaffID,
		FullName:             m.FullName,
		Position:             m.Position,
		CBU:                  m.CBU,
		Cashbond:             m.Cashbond,
		SalaryAdvance:        m.SalaryAdvance,
		MotorcycleLoan:       m.MotorcycleLoan,
		SpecialAdvance:       m.SpecialAdvance,
		CashAdvance:          m.CashAdvance,
		OtherReceivable:      m.OtherReceivable,
		StaffAccountsPayable: m.StaffAccountsPayable,
		UpdatedAt:            m.UpdatedAt,
	}
}

// ToDomainStaffBalanceSlice converts model balances to domain form
func ToDomainStaffBalanceSlice(ms []models.StaffBalance) []domain.StaffBalance {
	ds := make([]domain.StaffBalance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaffBalance(m)
	}
	return ds
}

// ToDomainPayable converts a model Payable to its domain form
func ToDomainPayable(m models.Payable) domain.Payable {
	return domain.Payable{
		PayableID:   m.ID,
		EmployeeID:  m.StaffID,
		StaffName:   m.StaffName,
		Description: m.Description,
		Amount:      m.Amount,
		TermMonths:  m.Term,
		PerMonth:    m.PerMonth,
		Balance:     m.Balance,
		EntryDate:   m.EntryDate,
	}
}

// ToDomainPayableSlice converts model payables to domain form
func ToDomainPayableSlice(ms []models.Payable) []domain.Payable {
	ds := make([]domain.Payable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayable(m)
	}
	return ds
}

// ToDomainBonusRun converts a model BonusRun to its domain form
func ToDomainBonusRun(m models.BonusRun) domain.BonusRun {
	return domain.BonusRun{
		BonusRunID: m.ID,
		BranchID:   m.BranchID,
		BonusMonth: m.BonusMonth,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToDomainBonusLine converts a model BonusLine to its domain form
func ToDomainBonusLine(m models.BonusLine) domain.BonusLine {
	return domain.BonusLine{
		BonusLineID: m.ID,
		BonusRunID:  m.BonusRunID,
		StaffID:     m.StaffID,
		Salary:      m.Salary,
		Month13:     m.Month13,
		Month14:     m.Month14,
		Month15:     m.Month15,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToDomainBonusLineSlice converts model bonus lines to domain form
func ToDomainBonusLineSlice(ms []models.BonusLine) []domain.BonusLine {
	ds := make([]domain.BonusLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBonusLine(m)
	}
	return ds
}

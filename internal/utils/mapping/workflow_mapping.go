package mapping

import (
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
)

// ToDomainLeaveRequest converts a model LeaveRequest to its domain form
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		LeaveRequestID: m.ID,
		EmployeeID:     m.EmployeeID,
		StaffName:      m.StaffName,
		LeaveType:      m.LeaveType,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         domain.ApprovalStatus(m.Status),
		Resolution: domain.Resolution{
			ApprovedBy:      m.ApprovedBy,
			ApprovedAt:      m.ApprovedAt,
			RejectedBy:      m.RejectedBy,
			RejectedAt:      m.RejectedAt,
			RejectionReason: m.RejectionReason,
		},
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainLeaveRequestSlice converts model leave requests to domain form
func ToDomainLeaveRequestSlice(ms []models.LeaveRequest) []domain.LeaveRequest {
	ds := make([]domain.LeaveRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveRequest(m)
	}
	return ds
}

// ToDomainLoanRequest converts a model LoanRequest to its domain form
func ToDomainLoanRequest(m models.LoanRequest) domain.LoanRequest {
	return domain.LoanRequest{
		LoanRequestID: m.ID,
		EmployeeID:    m.EmployeeID,
		StaffName:     m.StaffName,
		LoanType:      m.LoanType,
		Reason:        m.Reason,
		Amount:        m.Amount,
		Interest:      m.Interest,
		TermMonths:    m.Term,
		Total:         m.Total,
		PerMonth:      m.PerMonth,
		Status:        domain.ApprovalStatus(m.Status),
		Resolution: domain.Resolution{
			ApprovedBy:      m.ApprovedBy,
			ApprovedAt:      m.ApprovedAt,
			RejectedBy:      m.RejectedBy,
			RejectedAt:      m.RejectedAt,
			RejectionReason: m.RejectionReason,
		},
		DisbursementDate: m.DisbursementDate,
		CreatedAt:        m.CreatedAt,
	}
}

// ToDomainLoanRequestSlice converts model loan requests to domain form
func ToDomainLoanRequestSlice(ms []models.LoanRequest) []domain.LoanRequest {
	ds := make([]domain.LoanRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanRequest(m)
	}
	return ds
}

// ToDomainTransferOrder converts a model TransferOrder to its domain form
func ToDomainTransferOrder(m models.TransferOrder) domain.TransferOrder {
	return domain.TransferOrder{
		TransferOrderID: m.ID,
		OrderNo:         m.OrderNo,
		EmployeeID:      m.EmployeeID,
		EmployeeName:    m.EmployeeName,
		PrevBranchID:    m.PrevBranchID,
		PrevBranchCode:  m.PrevBranchCode,
		PrevBranchName:  m.PrevBranchName,
		ToBranchID:      m.ToBranchID,
		ToBranchCode:    m.ToBranchCode,
		ToBranchName:    m.ToBranchName,
		Area:            m.Area,
		Division:        m.Division,
		DateCreated:     m.DateCreated,
		EffectiveDate:   m.EffectiveDate,
		Details:         m.Details,
		Status:          domain.ApprovalStatus(m.Status),
		Resolution: domain.Resolution{
			ApprovedBy:      m.ApprovedBy,
			ApprovedAt:      m.ApprovedAt,
			RejectedBy:      m.RejectedBy,
			RejectedAt:      m.RejectedAt,
			RejectionReason: m.RejectionReason,
		},
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainTransferOrderSlice converts model transfer orders to domain form
func ToDomainTransferOrderSlice(ms []models.TransferOrder) []domain.TransferOrder {
	ds := make([]domain.TransferOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransferOrder(m)
	}
	return ds
}

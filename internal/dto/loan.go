package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to file a loan application.
// Total and per-month figures are computed server side and ignored if sent.
type CreateLoanRequest struct {
	EmployeeID int64           `json:"employeeID" binding:"required"`
	LoanType   string          `json:"loanType" binding:"required"`
	Reason     *string         `json:"reason"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Interest   decimal.Decimal `json:"interest"` // percent
	TermMonths int             `json:"term" binding:"required,min=1"`
}

// ListLoanParams defines query parameters for listing loan requests.
type ListLoanParams struct {
	Status   *string `form:"status" binding:"omitempty,approvalstatus"`
	BranchID *int64  `form:"branchID"`
}

// LoanResponse defines the data returned for a loan request.
type LoanResponse struct {
	LoanRequestID int64           `json:"id"`
	EmployeeID    int64           `json:"employeeID"`
	StaffName     string          `json:"staffName"`
	LoanType      string          `json:"loanType"`
	Reason        *string         `json:"reason,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Interest      decimal.Decimal `json:"interest"`
	TermMonths    int             `json:"term"`
	Total         decimal.Decimal `json:"total"`
	PerMonth      decimal.Decimal `json:"perMonth"`
	Status        string          `json:"status"`
	ResolutionResponse
	DisbursementDate *time.Time `json:"disbursementDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// ToLoanResponse converts a domain.LoanRequest to LoanResponse DTO
func ToLoanResponse(lr *domain.LoanRequest) LoanResponse {
	return LoanResponse{
		LoanRequestID: lr.LoanRequestID,
		EmployeeID:    lr.EmployeeID,
		StaffName:     lr.StaffName,
		LoanType:      lr.LoanType,
		Reason:        lr.Reason,
		Amount:        lr.Amount,
		Interest:      lr.Interest,
		TermMonths:    lr.TermMonths,
		Total:         lr.Total,
		PerMonth:      lr.PerMonth,
		Status:        string(lr.Status),
		ResolutionResponse: ResolutionResponse{
			ApprovedBy:      lr.ApprovedBy,
			ApprovedAt:      lr.ApprovedAt,
			RejectedBy:      lr.RejectedBy,
			RejectedAt:      lr.RejectedAt,
			RejectionReason: lr.RejectionReason,
		},
		DisbursementDate: lr.DisbursementDate,
		CreatedAt:        lr.CreatedAt,
	}
}

// ToListLoanResponse converts a slice of domain.LoanRequest to DTOs.
func ToListLoanResponse(requests []domain.LoanRequest) []LoanResponse {
	res := make([]LoanResponse, len(requests))
	for i, lr := range requests {
		res[i] = ToLoanResponse(&lr)
	}
	return res
}

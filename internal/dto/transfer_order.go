package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// CreateTransferOrderRequest defines the data needed to file a transfer
// order. The order number is minted server side.
type CreateTransferOrderRequest struct {
	EmployeeID    int64  `json:"employeeID" binding:"required"`
	PrevBranchID  int64  `json:"prevBranchID" binding:"required"`
	ToBranchID    int64  `json:"toBranchID" binding:"required"`
	Area          string `json:"area" binding:"required"`
	Division      string `json:"division" binding:"required"`
	DateCreated   string `json:"dateCreated" binding:"required"`   // 2006-01-02
	EffectiveDate string `json:"effectiveDate" binding:"required"` // 2006-01-02
	Details       string `json:"details" binding:"required"`
}

// ListTransferOrderParams defines query parameters for listing transfer orders.
type ListTransferOrderParams struct {
	Status   *string `form:"status" binding:"omitempty,approvalstatus"`
	BranchID *int64  `form:"branchID"`
}

// TransferOrderResponse defines the data returned for a transfer order.
type TransferOrderResponse struct {
	TransferOrderID int64  `json:"id"`
	OrderNo         string `json:"orderNo"`
	EmployeeID      int64  `json:"employeeID"`
	EmployeeName    string `json:"employeeName"`

	PrevBranchID   int64  `json:"prevBranchID"`
	PrevBranchCode string `json:"prevBranchCode"`
	PrevBranchName string `json:"prevBranchName"`
	ToBranchID     int64  `json:"toBranchID"`
	ToBranchCode   string `json:"toBranchCode"`
	ToBranchName   string `json:"toBranchName"`

	Area          string    `json:"area"`
	Division      string    `json:"division"`
	DateCreated   time.Time `json:"dateCreated"`
	EffectiveDate time.Time `json:"effectiveDate"`
	Details       string    `json:"details"`

	Status string `json:"status"`
	ResolutionResponse
	CreatedAt time.Time `json:"createdAt"`
}

// ToTransferOrderResponse converts a domain.TransferOrder to its DTO.
func ToTransferOrderResponse(to *domain.TransferOrder) TransferOrderResponse {
	return TransferOrderResponse{
		TransferOrderID: to.TransferOrderID,
		OrderNo:         to.OrderNo,
		EmployeeID:      to.EmployeeID,
		EmployeeName:    to.EmployeeName,
		PrevBranchID:    to.PrevBranchID,
		PrevBranchCode:  to.PrevBranchCode,
		PrevBranchName:  to.PrevBranchName,
		ToBranchID:      to.ToBranchID,
		ToBranchCode:    to.ToBranchCode,
		ToBranchName:    to.ToBranchName,
		Area:            to.Area,
		Division:        to.Division,
		DateCreated:     to.DateCreated,
		EffectiveDate:   to.EffectiveDate,
		Details:         to.Details,
		Status:          string(to.Status),
		ResolutionResponse: ResolutionResponse{
			ApprovedBy:      to.ApprovedBy,
			ApprovedAt:      to.ApprovedAt,
			RejectedBy:      to.RejectedBy,
			RejectedAt:      to.RejectedAt,
			RejectionReason: to.RejectionReason,
		},
		CreatedAt: to.CreatedAt,
	}
}

// ToListTransferOrderResponse converts a slice of domain.TransferOrder to DTOs.
func ToListTransferOrderResponse(orders []domain.TransferOrder) []TransferOrderResponse {
	res := make([]TransferOrderResponse, len(orders))
	for i, to := range orders {
		res[i] = ToTransferOrderResponse(&to)
	}
	return res
}

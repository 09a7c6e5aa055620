package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// CreateLeaveRequest defines the data needed to file a leave application.
type CreateLeaveRequest struct {
	EmployeeID int64  `json:"employeeID" binding:"required"`
	LeaveType  string `json:"leaveType" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"` // 2006-01-02
	EndDate    string `json:"endDate" binding:"required"`   // 2006-01-02
}

// ListLeaveParams defines query parameters for listing leave requests.
type ListLeaveParams struct {
	Status   *string `form:"status" binding:"omitempty,approvalstatus"`
	BranchID *int64  `form:"branchID"`
}

// LeaveResponse defines the data returned for a leave request.
type LeaveResponse struct {
	LeaveRequestID int64     `json:"id"`
	EmployeeID     int64     `json:"employeeID"`
	StaffName      string    `json:"staffName"`
	LeaveType      string    `json:"leaveType"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	ResolutionResponse
	CreatedAt time.Time `json:"createdAt"`
}

// ToLeaveResponse converts a domain.LeaveRequest to LeaveResponse DTO
func ToLeaveResponse(lr *domain.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		LeaveRequestID: lr.LeaveRequestID,
		EmployeeID:     lr.EmployeeID,
		StaffName:      lr.StaffName,
		LeaveType:      lr.LeaveType,
		StartDate:      lr.StartDate,
		EndDate:        lr.EndDate,
		Status:         string(lr.Status),
		ResolutionResponse: ResolutionResponse{
			ApprovedBy:      lr.ApprovedBy,
			ApprovedAt:      lr.ApprovedAt,
			RejectedBy:      lr.RejectedBy,
			RejectedAt:      lr.RejectedAt,
			RejectionReason: lr.RejectionReason,
		},
		CreatedAt: lr.CreatedAt,
	}
}

// ToListLeaveResponse converts a slice of domain.LeaveRequest to DTOs.
func ToListLeaveResponse(requests []domain.LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(requests))
	for i, lr := range requests {
		res[i] = ToLeaveResponse(&lr)
	}
	return res
}

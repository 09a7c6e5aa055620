package domain

import "time"

// LeaveRequest is a staff leave application awaiting resolution.
type LeaveRequest struct {
	LeaveRequestID int64          `json:"id"`
	EmployeeID     int64          `json:"employeeID"`
	StaffName      string         `json:"staffName"`
	LeaveType      string         `json:"leaveType"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Status         ApprovalStatus `json:"status"`
	Resolution
	CreatedAt time.Time `json:"createdAt"`
}

package domain

import "time"

// TransferOrderPrefix scopes the order-number sequence for staff transfers.
const TransferOrderPrefix = "TSO"

// TransferOrder moves a staff member between branches. OrderNo is minted by
// the sequence allocator inside the same transaction as the insert, so a
// reader never observes one without the other.
type TransferOrder struct {
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

	Status ApprovalStatus `json:"status"`
	Resolution
	CreatedBy *int64    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

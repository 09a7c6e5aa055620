package domain

import "time"

// ApprovalStatus is the lifecycle state shared by leave requests, loan
// requests and transfer orders. Pending is the only non-terminal state; the
// sole transitions are Pending -> Approved and Pending -> Rejected.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// Resolution carries the terminal-state metadata of a workflow entity.
// Invariant: while Status is Pending all fields are nil; afterwards exactly
// one of the approval pair and the rejection triple is set.
type Resolution struct {
	ApprovedBy      *int64     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectedBy      *int64     `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
}

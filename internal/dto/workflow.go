package dto

import "time"

// RejectRequest carries the reason for rejecting a pending item.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ResolutionResponse is the terminal-state metadata embedded in workflow
// responses. All fields are empty while the item is pending.
type ResolutionResponse struct {
	ApprovedBy      *int64     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectedBy      *int64     `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
}

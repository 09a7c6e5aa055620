package dto

import "github.com/pvfc/payroll_backoffice_app/internal/core/domain"

// CreateBranchRequest defines the data needed to create a branch.
type CreateBranchRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Area string `json:"area" binding:"required"`
}

// UpdateBranchRequest defines the data allowed for updating a branch.
type UpdateBranchRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
	Area *string `json:"area"`
}

// BranchResponse defines the data returned for a branch.
type BranchResponse struct {
	BranchID int64  `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Area     string `json:"area"`
}

// ToBranchResponse converts a domain.Branch to BranchResponse DTO
func ToBranchResponse(b *domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID: b.BranchID,
		Code:     b.Code,
		Name:     b.Name,
		Area:     b.Area,
	}
}

// ToListBranchResponse converts a slice of domain.Branch to response DTOs.
func ToListBranchResponse(branches []domain.Branch) []BranchResponse {
	res := make([]BranchResponse, len(branches))
	for i, b := range branches {
		res[i] = ToBranchResponse(&b)
	}
	return res
}

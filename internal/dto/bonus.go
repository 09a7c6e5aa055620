package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetBonusRunParams identifies the run to fetch or create.
type GetBonusRunParams struct {
	BranchID   int64  `form:"branchID" binding:"required"`
	BonusMonth string `form:"month" binding:"required"` // 2006-01
}

// SaveBonusLineRequest defines one employee's bonus split to upsert.
type SaveBonusLineRequest struct {
	StaffID int64           `json:"staffID" binding:"required"`
	Salary  decimal.Decimal `json:"salary"`
	Month13 decimal.Decimal `json:"month13"`
	Month14 decimal.Decimal `json:"month14"`
	Month15 decimal.Decimal `json:"month15"`
}

// SaveBonusRunRequest defines the data needed to record a branch bonus sheet.
type SaveBonusRunRequest struct {
	BranchID   int64                  `json:"branchID" binding:"required"`
	BonusMonth string                 `json:"month" binding:"required"` // 2006-01
	Notes      *string                `json:"notes"`
	Lines      []SaveBonusLineRequest `json:"lines" binding:"required,dive"`
}

// BonusLineResponse is one employee's row within a run.
type BonusLineResponse struct {
	BonusLineID int64           `json:"id"`
	StaffID     int64           `json:"staffID"`
	Salary      decimal.Decimal `json:"salary"`
	Month13     decimal.Decimal `json:"month13"`
	Month14     decimal.Decimal `json:"month14"`
	Month15     decimal.Decimal `json:"month15"`
	Total       decimal.Decimal `json:"total"`
}

// BonusRunResponse is a branch bonus sheet with its lines.
type BonusRunResponse struct {
	BonusRunID int64               `json:"id"`
	BranchID   int64               `json:"branchID"`
	BonusMonth string              `json:"month"`
	Notes      *string             `json:"notes,omitempty"`
	Lines      []BonusLineResponse `json:"lines"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  *time.Time          `json:"updatedAt,omitempty"`
}

// ToBonusRunResponse converts a run and its lines to the response DTO.
func ToBonusRunResponse(run *domain.BonusRun, lines []domain.BonusLine) BonusRunResponse {
	lineRes := make([]BonusLineResponse, len(lines))
	for i, l := range lines {
		lineRes[i] = BonusLineResponse{
			BonusLineID: l.BonusLineID,
			StaffID:     l.StaffID,
			Salary:      l.Salary,
			Month13:     l.Month13,
			Month14:     l.Month14,
			Month15:     l.Month15,
			Total:       l.Total(),
		}
	}
	return BonusRunResponse{
		BonusRunID: run.BonusRunID,
		BranchID:   run.BranchID,
		BonusMonth: run.BonusMonth.Format("2006-01"),
		Notes:      run.Notes,
		Lines:      lineRes,
		CreatedAt:  run.CreatedAt,
		UpdatedAt:  run.UpdatedAt,
	}
}

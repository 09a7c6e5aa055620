package mapping

import (
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
)

// ToModelBranch converts a domain Branch to a model Branch
func ToModelBranch(d domain.Branch) models.Branch {
	return models.Branch{
		ID:   d.BranchID,
		Code: d.Code,
		Name: d.Name,
		Area: d.Area,
	}
}

// ToDomainBranch converts a model Branch to a domain Branch
func ToDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID: m.ID,
		Code:     m.Code,
		Name:     m.Name,
		Area:     m.Area,
	}
}

// ToDomainBranchSlice converts a slice of model Branches to domain Branches
func ToDomainBranchSlice(ms []models.Branch) []domain.Branch {
	ds := make([]domain.Branch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBranch(m)
	}
	return ds
}

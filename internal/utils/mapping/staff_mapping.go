package mapping

import (
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/models"
)

// ToModelStaff converts a domain Staff to a model Staff
func ToModelStaff(d domain.Staff) models.Staff {
	return models.Staff{
		ID:                   d.StaffID,
		EmployeeNo:           d.EmployeeNo,
		FullName:             d.FullName,
		Position:             d.Position,
		Department:           d.Department,
		Area:                 d.Area,
		BranchID:             d.BranchID,
		Salary:               d.Salary,
		Ecola:                d.Ecola,
		Transportation:       d.Transportation,
		Postage:              d.Postage,
		MotorcycleLoan:       d.MotorcycleLoan,
		AdditionalTarget:     d.AdditionalTarget,
		Repairing:            d.Repairing,
		AdditionalMonitoring: d.AdditionalMonitoring,
		Motorcycle:           d.Motorcycle,
		OtherDeduction:       d.OtherDeduction,
		RegularizationDate:   d.RegularizationDate,
		Status:               string(d.Status),
		PhotoURL:             d.PhotoURL,
	}
}

// ToDomainStaff converts a model Staff to a domain Staff
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:              m.ID,
		EmployeeNo:           m.EmployeeNo,
		FullName:             m.FullName,
		Position:             m.Position,
		Department:           m.Department,
		Area:                 m.Area,
		BranchID:             m.BranchID,
		Salary:               m.Salary,
		Ecola:                m.Ecola,
		Transportation:       m.Transportation,
		Postage:              m.Postage,
		MotorcycleLoan:       m.MotorcycleLoan,
		AdditionalTarget:     m.AdditionalTarget,
		Repairing:            m.Repairing,
		AdditionalMonitoring: m.AdditionalMonitoring,
		Motorcycle:           m.Motorcycle,
		OtherDeduction:       m.OtherDeduction,
		RegularizationDate:   m.RegularizationDate,
		Status:               domain.NormalizeStaffStatus(m.Status),
		PhotoURL:             m.PhotoURL,
	}
}

// ToDomainStaffSlice converts a slice of model Staff to domain Staff
func ToDomainStaffSlice(ms []models.Staff) []domain.Staff {
	ds := make([]domain.Staff, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaff(m)
	}
	return ds
}

// ToDomainStaffAttachment converts a model StaffAttachment to its domain form
func ToDomainStaffAttachment(m models.StaffAttachment) domain.StaffAttachment {
	return domain.StaffAttachment{
		AttachmentID: m.ID,
		StaffID:      m.StaffID,
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		FileURL:      m.FileURL,
		UploadedBy:   m.UploadedBy,
		UploadedAt:   m.UploadedAt,
	}
}

// ToDomainStaffAttachmentSlice converts model attachments to domain attachments
func ToDomainStaffAttachmentSlice(ms []models.StaffAttachment) []domain.StaffAttachment {
	ds := make([]domain.StaffAttachment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStaffAttachment(m)
	}
	return ds
}

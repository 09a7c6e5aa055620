package dto

import (
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStaffRequest defines the data needed to create a staff record.
// Dates travel as "2006-01-02" strings and are parsed in the service.
type CreateStaffRequest struct {
	EmployeeNo *string `json:"employeeNo"`
	FullName   string  `json:"fullname" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Department *string `json:"department"`
	Area       *string `json:"area"`
	BranchID   *int64  `json:"branchID"`

	Salary         decimal.Decimal `json:"salary"`
	Ecola          decimal.Decimal `json:"ecola"`
	Transportation decimal.Decimal `json:"transportation"`
	Postage        decimal.Decimal `json:"postage"`

	MotorcycleLoan       decimal.Decimal `json:"motorcycleLoan"`
	AdditionalTarget     decimal.Decimal `json:"additionalTarget"`
	Repairing            decimal.Decimal `json:"repairing"`
	AdditionalMonitoring decimal.Decimal `json:"additionalMonitoring"`
	Motorcycle           decimal.Decimal `json:"motorcycle"`
	OtherDeduction       decimal.Decimal `json:"otherDeduction"`

	RegularizationDate *string `json:"regularizationDate"`
	Status             string  `json:"status"`
}

// UpdateStaffRequest defines the data allowed for updating a staff record.
// Pointers distinguish omitted fields from zero values.
type UpdateStaffRequest struct {
	EmployeeNo *string `json:"employeeNo"`
	FullName   *string `json:"fullname"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Area       *string `json:"area"`
	BranchID   *int64  `json:"branchID"`

	Salary         *decimal.Decimal `json:"salary"`
	Ecola          *decimal.Decimal `json:"ecola"`
	Transportation *decimal.Decimal `json:"transportation"`
	Postage        *decimal.Decimal `json:"postage"`

	MotorcycleLoan       *decimal.Decimal `json:"motorcycleLoan"`
	AdditionalTarget     *decimal.Decimal `json:"additionalTarget"`
	Repairing            *decimal.Decimal `json:"repairing"`
	AdditionalMonitoring *decimal.Decimal `json:"additionalMonitoring"`
	Motorcycle           *decimal.Decimal `json:"motorcycle"`
	OtherDeduction       *decimal.Decimal `json:"otherDeduction"`

	RegularizationDate *string `json:"regularizationDate"`
	Status             *string `json:"status"`
}

// ListStaffParams defines query parameters for listing staff.
type ListStaffParams struct {
	BranchID *int64  `form:"branchID"`
	Status   *string `form:"status"`
	Area     *string `form:"area"`
	Search   *string `form:"search"`
}

// StaffResponse defines the data returned for a staff record.
type StaffResponse struct {
	StaffID    int64   `json:"id"`
	EmployeeNo *string `json:"employeeNo,omitempty"`
	FullName   string  `json:"fullname"`
	Position   string  `json:"position"`
	Department *string `json:"department,omitempty"`
	Area       *string `json:"area,omitempty"`
	BranchID   *int64  `json:"branchID,omitempty"`

	Salary         decimal.Decimal `json:"salary"`
	Ecola          decimal.Decimal `json:"ecola"`
	Transportation decimal.Decimal `json:"transportation"`
	Postage        decimal.Decimal `json:"postage"`

	MotorcycleLoan       decimal.Decimal `json:"motorcycleLoan"`
	AdditionalTarget     decimal.Decimal `json:"additionalTarget"`
	Repairing            decimal.Decimal `json:"repairing"`
	AdditionalMonitoring decimal.Decimal `json:"additionalMonitoring"`
	Motorcycle           decimal.Decimal `json:"motorcycle"`
	OtherDeduction       decimal.Decimal `json:"otherDeduction"`

	RegularizationDate *time.Time `json:"regularizationDate,omitempty"`
	Status             string     `json:"status"`
	PhotoURL           *string    `json:"photoURL,omitempty"`
}

// StaffAttachmentResponse defines the data returned for an uploaded document.
type StaffAttachmentResponse struct {
	AttachmentID int64     `json:"id"`
	StaffID      int64     `json:"staffID"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileURL      string    `json:"fileURL"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ToStaffResponse converts a domain.Staff to StaffResponse DTO
func ToStaffResponse(s *domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:              s.StaffID,
		EmployeeNo:           s.EmployeeNo,
		FullName:             s.FullName,
		Position:             s.Position,
		Department:           s.Department,
		Area:                 s.Area,
		BranchID:             s.BranchID,
		Salary:               s.Salary,
		Ecola:                s.Ecola,
		Transportation:       s.Transportation,
		Postage:              s.Postage,
		MotorcycleLoan:       s.MotorcycleLoan,
		AdditionalTarget:     s.AdditionalTarget,
		Repairing:            s.Repairing,
		AdditionalMonitoring: s.AdditionalMonitoring,
		Motorcycle:           s.Motorcycle,
		OtherDeduction:       s.OtherDeduction,
		RegularizationDate:   s.RegularizationDate,
		Status:               string(s.Status),
		PhotoURL:             s.PhotoURL,
	}
}

// ToListStaffResponse converts a slice of domain.Staff to response DTOs.
func ToListStaffResponse(staff []domain.Staff) []StaffResponse {
	res := make([]StaffResponse, len(staff))
	for i, s := range staff {
		res[i] = ToStaffResponse(&s)
	}
	return res
}

// ToStaffAttachmentResponse converts a domain.StaffAttachment to its DTO.
func ToStaffAttachmentResponse(a *domain.StaffAttachment) StaffAttachmentResponse {
	return StaffAttachmentResponse{
		AttachmentID: a.AttachmentID,
		StaffID:      a.StaffID,
		FileName:     a.FileName,
		OriginalName: a.OriginalName,
		FileURL:      a.FileURL,
		UploadedAt:   a.UploadedAt,
	}
}

// ToListStaffAttachmentResponse converts attachments to response DTOs.
func ToListStaffAttachmentResponse(attachments []domain.StaffAttachment) []StaffAttachmentResponse {
	res := make([]StaffAttachmentResponse, len(attachments))
	for i, a := range attachments {
		res[i] = ToStaffAttachmentResponse(&a)
	}
	return res
}

package services

import (
	"context"
	"mime/multipart"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
)

// StaffReaderSvc defines read operations for staff records
type StaffReaderSvc interface {
	// GetStaffByID retrieves a staff record visible to the actor.
	GetStaffByID(ctx context.Context, actor domain.Principal, staffID int64) (*domain.Staff, error)

	// ListStaff retrieves staff records matching the params, narrowed to the
	// actor's branch for branch managers.
	ListStaff(ctx context.Context, actor domain.Principal, params dto.ListStaffParams) ([]domain.Staff, error)
}

// StaffWriterSvc defines write operations for staff records
type StaffWriterSvc interface {
	// CreateStaff creates a staff record and its zeroed balance row.
	CreateStaff(ctx context.Context, actor domain.Principal, req dto.CreateStaffRequest) (*domain.Staff, error)

	// UpdateStaff updates a staff record the actor may manage.
	UpdateStaff(ctx context.Context, actor domain.Principal, staffID int64, req dto.UpdateStaffRequest) (*domain.Staff, error)

	// DeleteStaff removes a staff record. Admin only.
	DeleteStaff(ctx context.Context, actor domain.Principal, staffID int64) error
}

// StaffUploadSvc defines photo and document upload operations
type StaffUploadSvc interface {
	// SavePhoto stores an uploaded photo and records its URL.
	SavePhoto(ctx context.Context, actor domain.Principal, staffID int64, file *multipart.FileHeader) (*domain.Staff, error)

	// SaveAttachment stores an uploaded document against a staff record.
	SaveAttachment(ctx context.Context, actor domain.Principal, staffID int64, file *multipart.FileHeader) (*domain.StaffAttachment, error)

	// ListAttachments retrieves a staff record's documents.
	ListAttachments(ctx context.Context, actor domain.Principal, staffID int64) ([]domain.StaffAttachment, error)

	// DeleteAttachment removes a document record the actor may manage.
	DeleteAttachment(ctx context.Context, actor domain.Principal, staffID, attachmentID int64) error
}

// StaffSvcFacade combines all staff-related service interfaces
type StaffSvcFacade interface {
	StaffReaderSvc
	StaffWriterSvc
	StaffUploadSvc
}

package repositories

import (
	"context"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// StaffListFilter narrows staff listings. Nil fields mean no filtering.
type StaffListFilter struct {
	BranchID *int64
	Status   *domain.StaffStatus
	Area     *string
	Search   *string
}

// StaffReader defines read operations for staff data
type StaffReader interface {
	// FindStaffByID retrieves a staff record by its unique identifier.
	FindStaffByID(ctx context.Context, staffID int64) (*domain.Staff, error)

	// ListStaff retrieves staff records matching the filter.
	ListStaff(ctx context.Context, filter StaffListFilter) ([]domain.Staff, error)
}

// StaffWriter defines write operations for staff data
type StaffWriter interface {
	// SaveStaff persists a new staff record together with its zeroed balance
	// row in one transaction and returns it with its assigned ID.
	SaveStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error)

	// UpdateStaff updates a staff record and keeps the balance row's name and
	// position columns in sync inside the same transaction.
	UpdateStaff(ctx context.Context, staff domain.Staff) (*domain.Staff, error)

	// SetStaffPhoto records the stored photo URL for a staff record.
	SetStaffPhoto(ctx context.Context, staffID int64, photoURL string) error

	// DeleteStaff removes a staff record together with its balance row.
	DeleteStaff(ctx context.Context, staffID int64) error
}

// StaffAttachmentSupport defines operations for staff document uploads
type StaffAttachmentSupport interface {
	// SaveAttachment files an uploaded document against a staff record.
	SaveAttachment(ctx context.Context, attachment domain.StaffAttachment) (*domain.StaffAttachment, error)

	// ListAttachments retrieves a staff record's documents, newest first.
	ListAttachments(ctx context.Context, staffID int64) ([]domain.StaffAttachment, error)

	// FindAttachmentByID retrieves a single document.
	FindAttachmentByID(ctx context.Context, attachmentID int64) (*domain.StaffAttachment, error)

	// DeleteAttachment removes a document record.
	DeleteAttachment(ctx context.Context, attachmentID int64) error
}

// StaffRepositoryFacade combines all staff-related repository interfaces
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
	StaffAttachmentSupport
}

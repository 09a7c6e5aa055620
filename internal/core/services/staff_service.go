package services

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
	"github.com/pvfc/payroll_backoffice_app/internal/dto"
	"github.com/pvfc/payroll_backoffice_app/internal/platform/config"
)

const (
	maxPhotoSize      = 2 << 20  // 2 MiB
	maxAttachmentSize = 10 << 20 // 10 MiB
)

var photoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

var attachmentExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// StaffService manages employee records, photos and documents.
type StaffService struct {
	BaseService
	cfg        *config.Config
	staffRepo  portsrepo.StaffRepositoryFacade
	branchRepo portsrepo.BranchRepositoryFacade
}

func NewStaffService(cfg *config.Config, staffRepo portsrepo.StaffRepositoryFacade, branchRepo portsrepo.BranchRepositoryFacade) *StaffService {
	return &StaffService{cfg: cfg, staffRepo: staffRepo, branchRepo: branchRepo}
}

// canManage reports whether the actor may modify the given staff record.
func canManage(actor domain.Principal, staff *domain.Staff) bool {
	if actor.IsAdmin() {
		return true
	}
	return staff.BranchID != nil && actor.OwnsBranch(*staff.BranchID)
}

func (s *StaffService) GetStaffByID(ctx context.Context, actor domain.Principal, staffID int64) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}
	return staff, nil
}

func (s *StaffService) ListStaff(ctx context.Context, actor domain.Principal, params dto.ListStaffParams) ([]domain.Staff, error) {
	// Branch managers only ever see their own branch, whatever they ask for.
	branchID, err := scopedBranchID(actor, params.BranchID)
	if err != nil {
		return nil, err
	}
	filter := portsrepo.StaffListFilter{
		BranchID: branchID,
		Area:     params.Area,
		Search:   params.Search,
	}
	if params.Status != nil {
		status := domain.NormalizeStaffStatus(*params.Status)
		filter.Status = &status
	}
	return s.staffRepo.ListStaff(ctx, filter)
}

func (s *StaffService) validateBranch(ctx context.Context, branchID *int64) error {
	if branchID == nil {
		return nil
	}
	if _, err := s.branchRepo.FindBranchByID(ctx, *branchID); err != nil {
		return apperrors.NewValidationError("branch does not exist")
	}
	return nil
}

func (s *StaffService) CreateStaff(ctx context.Context, actor domain.Principal, req dto.CreateStaffRequest) (*domain.Staff, error) {
	staff := domain.Staff{
		EmployeeNo:           req.EmployeeNo,
		FullName:             strings.TrimSpace(req.FullName),
		Position:             strings.TrimSpace(req.Position),
		Department:           req.Department,
		Area:                 req.Area,
		BranchID:             req.BranchID,
		Salary:               req.Salary,
		Ecola:                req.Ecola,
		Transportation:       req.Transportation,
		Postage:              req.Postage,
		MotorcycleLoan:       req.MotorcycleLoan,
		AdditionalTarget:     req.AdditionalTarget,
		Repairing:            req.Repairing,
		AdditionalMonitoring: req.AdditionalMonitoring,
		Motorcycle:           req.Motorcycle,
		OtherDeduction:       req.OtherDeduction,
		Status:               domain.NormalizeStaffStatus(req.Status),
	}
	if staff.FullName == "" || staff.Position == "" {
		return nil, apperrors.NewValidationError("fullname and position are required")
	}
	if staff.Salary.IsNegative() {
		return nil, apperrors.NewValidationError("salary cannot be negative")
	}

	// Branch managers always create staff into their own branch.
	if actor.IsBranchManager() {
		staff.BranchID = actor.BranchID
	}
	if err := s.validateBranch(ctx, staff.BranchID); err != nil {
		return nil, err
	}

	if req.RegularizationDate != nil && *req.RegularizationDate != "" {
		d, err := parseDate(*req.RegularizationDate, "regularizationDate")
		if err != nil {
			return nil, err
		}
		staff.RegularizationDate = &d
	}

	saved, err := s.staffRepo.SaveStaff(ctx, staff)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "staff created", slog.Int64("staff_id", saved.StaffID), slog.Int64("created_by", actor.UserID))
	return saved, nil
}

func (s *StaffService) UpdateStaff(ctx context.Context, actor domain.Principal, staffID int64, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}

	if req.EmployeeNo != nil {
		staff.EmployeeNo = req.EmployeeNo
	}
	if req.FullName != nil {
		staff.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Position != nil {
		staff.Position = strings.TrimSpace(*req.Position)
	}
	if req.Department != nil {
		staff.Department = req.Department
	}
	if req.Area != nil {
		staff.Area = req.Area
	}
	if req.BranchID != nil {
		// Reassignment between branches goes through a transfer order.
		if !actor.IsAdmin() {
			return nil, apperrors.ErrForbidden
		}
		staff.BranchID = req.BranchID
		if err := s.validateBranch(ctx, staff.BranchID); err != nil {
			return nil, err
		}
	}
	if req.Salary != nil {
		staff.Salary = *req.Salary
	}
	if req.Ecola != nil {
		staff.Ecola = *req.Ecola
	}
	if req.Transportation != nil {
		staff.Transportation = *req.Transportation
	}
	if req.Postage != nil {
		staff.Postage = *req.Postage
	}
	if req.MotorcycleLoan != nil {
		staff.MotorcycleLoan = *req.MotorcycleLoan
	}
	if req.AdditionalTarget != nil {
		staff.AdditionalTarget = *req.AdditionalTarget
	}
	if req.Repairing != nil {
		staff.Repairing = *req.Repairing
	}
	if req.AdditionalMonitoring != nil {
		staff.AdditionalMonitoring = *req.AdditionalMonitoring
	}
	if req.Motorcycle != nil {
		staff.Motorcycle = *req.Motorcycle
	}
	if req.OtherDeduction != nil {
		staff.OtherDeduction = *req.OtherDeduction
	}
	if req.RegularizationDate != nil {
		if *req.RegularizationDate == "" {
			staff.RegularizationDate = nil
		} else {
			d, err := parseDate(*req.RegularizationDate, "regularizationDate")
			if err != nil {
				return nil, err
			}
			staff.RegularizationDate = &d
		}
	}
	if req.Status != nil {
		staff.Status = domain.NormalizeStaffStatus(*req.Status)
	}

	if staff.FullName == "" || staff.Position == "" {
		return nil, apperrors.NewValidationError("fullname and position cannot be empty")
	}
	if staff.Salary.IsNegative() {
		return nil, apperrors.NewValidationError("salary cannot be negative")
	}

	return s.staffRepo.UpdateStaff(ctx, *staff)
}

// DeleteStaff removes an employee record. Admin only; records still referenced
// by requests, orders or payables surface a conflict from the repository.
func (s *StaffService) DeleteStaff(ctx context.Context, actor domain.Principal, staffID int64) error {
	if !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}
	if err := s.staffRepo.DeleteStaff(ctx, staffID); err != nil {
		return err
	}
	s.LogInfo(ctx, "staff deleted", slog.Int64("staff_id", staffID), slog.Int64("deleted_by", actor.UserID))
	return nil
}

// storeUpload writes an uploaded file under the configured upload directory
// with a random filename and returns the stored name and public URL.
func (s *StaffService) storeUpload(file *multipart.FileHeader, subdir string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	dir := filepath.Join(s.cfg.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", err
	}
	return name, "/uploads/" + subdir + "/" + name, nil
}

func (s *StaffService) SavePhoto(ctx context.Context, actor domain.Principal, staffID int64, file *multipart.FileHeader) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !photoExtensions[ext] {
		return nil, apperrors.NewValidationError("photo must be a jpg or png file")
	}
	if file.Size > maxPhotoSize {
		return nil, apperrors.NewValidationError("photo exceeds the 2MB limit")
	}

	_, url, err := s.storeUpload(file, "photos")
	if err != nil {
		s.LogError(ctx, err, "failed to store photo", slog.Int64("staff_id", staffID))
		return nil, err
	}
	if err := s.staffRepo.SetStaffPhoto(ctx, staffID, url); err != nil {
		return nil, err
	}
	staff.PhotoURL = &url
	return staff, nil
}

func (s *StaffService) SaveAttachment(ctx context.Context, actor domain.Principal, staffID int64, file *multipart.FileHeader) (*domain.StaffAttachment, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !attachmentExtensions[ext] {
		return nil, apperrors.NewValidationError("unsupported attachment file type")
	}
	if file.Size > maxAttachmentSize {
		return nil, apperrors.NewValidationError("attachment exceeds the 10MB limit")
	}

	name, url, err := s.storeUpload(file, "documents")
	if err != nil {
		s.LogError(ctx, err, "failed to store attachment", slog.Int64("staff_id", staffID))
		return nil, err
	}

	attachment := domain.StaffAttachment{
		StaffID:      staffID,
		FileName:     name,
		OriginalName: filepath.Base(file.Filename),
		FileURL:      url,
		UploadedBy:   &actor.UserID,
	}
	return s.staffRepo.SaveAttachment(ctx, attachment)
}

func (s *StaffService) ListAttachments(ctx context.Context, actor domain.Principal, staffID int64) ([]domain.StaffAttachment, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, staff) {
		return nil, apperrors.ErrForbidden
	}
	return s.staffRepo.ListAttachments(ctx, staffID)
}

// DeleteAttachment removes a document record after checking the actor manages
// the employee it belongs to. The stored file is left on disk.
func (s *StaffService) DeleteAttachment(ctx context.Context, actor domain.Principal, staffID, attachmentID int64) error {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return err
	}
	if !canManage(actor, staff) {
		return apperrors.ErrForbidden
	}

	attachment, err := s.staffRepo.FindAttachmentByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if attachment.StaffID != staffID {
		return apperrors.ErrNotFound
	}
	return s.staffRepo.DeleteAttachment(ctx, attachmentID)
}

package repositories

import (
	"context"
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// BonusReader defines read operations for bonus runs
type BonusReader interface {
	// FindRun retrieves the run for a branch and month, if any.
	FindRun(ctx context.Context, branchID int64, month time.Time) (*domain.BonusRun, error)

	// ListLines retrieves a run's lines ordered by staff name.
	ListLines(ctx context.Context, bonusRunID int64) ([]domain.BonusLine, error)
}

// BonusWriter defines write operations for bonus runs
type BonusWriter interface {
	// GetOrCreateRun returns the run for (branchID, month), inserting an
	// empty one when it does not exist yet.
	GetOrCreateRun(ctx context.Context, branchID int64, month time.Time, notes *string) (*domain.BonusRun, error)

	// UpsertLines inserts or overwrites the given lines of a run, keyed on
	// (bonus_run_id, staff_id), in one transaction.
	UpsertLines(ctx context.Context, bonusRunID int64, lines []domain.BonusLine) error
}

// BonusRepositoryFacade combines all bonus-related repository interfaces
type BonusRepositoryFacade interface {
	BonusReader
	BonusWriter
}

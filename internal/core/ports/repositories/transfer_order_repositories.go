package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pvfc/payroll_backoffice_app/internal/core/domain"
)

// OrderSequenceAllocator mints gap-free order numbers. NextOrderNo must run
// inside the caller's transaction so the counter increment and the order
// insert commit or roll back together.
type OrderSequenceAllocator interface {
	// NextOrderNo locks the (prefix, year, month) counter row, formats the
	// current value as PREFIX-YYYY-MM-NNNN and advances the counter.
	NextOrderNo(ctx context.Context, tx pgx.Tx, prefix string, at time.Time) (string, error)
}

// TransferOrderReader defines read operations for transfer orders
type TransferOrderReader interface {
	// FindTransferOrderByID retrieves a transfer order by its identifier.
	FindTransferOrderByID(ctx context.Context, transferOrderID int64) (*domain.TransferOrder, error)

	// ListTransferOrders retrieves transfer orders matching the filter, newest
	// first. BranchID matches the order's previous branch.
	ListTransferOrders(ctx context.Context, filter WorkflowListFilter) ([]domain.TransferOrder, error)
}

// TransferOrderWriter defines write and transition operations for transfer orders
type TransferOrderWriter interface {
	// SaveTransferOrder mints the order number and inserts the order in one
	// transaction, returning the persisted row.
	SaveTransferOrder(ctx context.Context, order domain.TransferOrder) (*domain.TransferOrder, error)

	// ApproveTransferOrder moves a pending order to Approved.
	ApproveTransferOrder(ctx context.Context, transferOrderID int64, approverID int64) (*domain.TransferOrder, error)

	// RejectTransferOrder moves a pending order to Rejected with a reason.
	RejectTransferOrder(ctx context.Context, transferOrderID int64, rejecterID int64, reason string) (*domain.TransferOrder, error)
}

// TransferOrderRepositoryFacade combines all transfer-order repository interfaces
type TransferOrderRepositoryFacade interface {
	TransferOrderReader
	TransferOrderWriter
}

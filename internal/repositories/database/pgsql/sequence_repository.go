package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pvfc/payroll_backoffice_app/internal/core/ports/repositories"
)

// PgxOrderSequenceRepository allocates monthly order numbers from the
// order_sequences counter table. All methods run on the caller's transaction:
// the row lock taken here must not outlive the order insert it protects.
type PgxOrderSequenceRepository struct {
	BaseRepository
}

func newPgxOrderSequenceRepository(db *pgxpool.Pool) portsrepo.OrderSequenceAllocator {
	return &PgxOrderSequenceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OrderSequenceAllocator = (*PgxOrderSequenceRepository)(nil)

// NextOrderNo mints the next number for (prefix, year, month) and advances
// the counter. Concurrent allocators serialize on the FOR UPDATE row lock,
// so numbers within a month are gap-free and strictly increasing.
func (r *PgxOrderSequenceRepository) NextOrderNo(ctx context.Context, tx pgx.Tx, prefix string, at time.Time) (string, error) {
	year, month := at.Year(), int(at.Month())

	// Seed the counter row on first use of a month. DO NOTHING keeps an
	// existing counter untouched when two allocators race on the seed.
	seedQuery := `
		INSERT INTO order_sequences (prefix, year, month, next_value)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (prefix, year, month) DO NOTHING;`
	if _, err := tx.Exec(ctx, seedQuery, prefix, year, month); err != nil {
		return "", fmt.Errorf("failed to seed order sequence %s-%d-%02d: %w", prefix, year, month, err)
	}

	var value int
	lockQuery := `
		SELECT next_value FROM order_sequences
		WHERE prefix = $1 AND year = $2 AND month = $3
		FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, prefix, year, month).Scan(&value); err != nil {
		return "", fmt.Errorf("failed to lock order sequence %s-%d-%02d: %w", prefix, year, month, err)
	}

	advanceQuery := `
		UPDATE order_sequences SET next_value = next_value + 1
		WHERE prefix = $1 AND year = $2 AND month = $3;`
	if _, err := tx.Exec(ctx, advanceQuery, prefix, year, month); err != nil {
		return "", fmt.Errorf("failed to advance order sequence %s-%d-%02d: %w", prefix, year, month, err)
	}

	return FormatOrderNo(prefix, year, month, value), nil
}

// FormatOrderNo renders an order number as PREFIX-YYYY-MM-NNNN.
func FormatOrderNo(prefix string, year, month, value int) string {
	return fmt.Sprintf("%s-%d-%02d-%04d", prefix, year, month, value)
}

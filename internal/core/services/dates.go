package services

import (
	"strings"
	"time"

	"github.com/pvfc/payroll_backoffice_app/internal/apperrors"
)

const dateLayout = "2006-01-02"

// parseDate parses a client-supplied YYYY-MM-DD date.
func parseDate(value string, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must be a valid YYYY-MM-DD date")
	}
	return t, nil
}

// parseMonth parses a client-supplied YYYY-MM month and normalizes it to the
// first day of that month.
func parseMonth(value string, field string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must be a valid YYYY-MM month")
	}
	return t, nil
}

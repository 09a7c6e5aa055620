package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNo(t *testing.T) {
	assert.Equal(t, "TSO-2026-08-0001", FormatOrderNo("TSO", 2026, 8, 1))
	assert.Equal(t, "TSO-2026-12-0042", FormatOrderNo("TSO", 2026, 12, 42))
	assert.Equal(t, "TSO-2027-01-9999", FormatOrderNo("TSO", 2027, 1, 9999))
	// Beyond four digits the number simply widens.
	assert.Equal(t, "TSO-2027-01-10000", FormatOrderNo("TSO", 2027, 1, 10000))
}

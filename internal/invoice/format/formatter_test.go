package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	issuedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		seq      int64
		want     string
	}{
		{"default padded", DefaultInvoiceNumberTemplate, 7, "INV-0007"},
		{"pad overflow keeps digits", "INV-{SEQ4}", 123456, "INV-123456"},
		{"date tokens", "INV-{YYYY}{MM}{DD}-{SEQ}", 42, "INV-20250615-42"},
		{"short year", "R{YY}-{SEQ6}", 9, "R25-000009"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInvoiceNumber(tt.template, issuedAt, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInvoiceNumberRejectsBadInput(t *testing.T) {
	issuedAt := time.Now()

	_, err := FormatInvoiceNumber("", issuedAt, 1)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{SEQ}", issuedAt, 0)
	assert.Error(t, err)

	_, err = FormatInvoiceNumber("INV-{NOPE}", issuedAt, 1)
	assert.Error(t, err)
}

package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/stagebill/stagebill/internal/errors"
)

func TestFormatUSD(t *testing.T) {
	f, err := NewFormatter("usd", "en-US")
	require.NoError(t, err)

	tests := []struct {
		minor int64
		want  string
	}{
		{40000, "$400.00"},
		{65000, "$650.00"},
		{58000, "$580.00"},
		{173000, "$1,730.00"},
		{0, "$0.00"},
		{5, "$0.05"},
		{123456789, "$1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Format(tt.minor))
	}
}

func TestFormatUnknownCurrencyFallsBackToCode(t *testing.T) {
	f, err := NewFormatter("xts", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "xts400.00", f.Format(40000))
}

func TestNewFormatterRejectsBadLocale(t *testing.T) {
	_, err := NewFormatter("usd", "not a locale!!")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

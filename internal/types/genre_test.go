package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/stagebill/stagebill/internal/errors"
)

func TestGenreValidate(t *testing.T) {
	assert.NoError(t, GenreTragedy.Validate())
	assert.NoError(t, GenreComedy.Validate())

	err := Genre("opera").Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsUnknownGenre(err))
}

func TestStatementFormatValidate(t *testing.T) {
	for _, f := range []StatementFormat{
		StatementFormatText,
		StatementFormatHTML,
		StatementFormatJSON,
		StatementFormatPDF,
		"",
	} {
		assert.NoError(t, f.Validate())
	}

	err := StatementFormat("xml").Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestGetCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", GetCurrencySymbol("usd"))
	assert.Equal(t, "€", GetCurrencySymbol("eur"))
	assert.Equal(t, "xts", GetCurrencySymbol("xts"))
}

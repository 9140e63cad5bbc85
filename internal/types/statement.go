package types

import (
	ierr "github.com/stagebill/stagebill/internal/errors"
)

// StatementFormat is the output format requested for a rendered statement.
type StatementFormat string

const (
	StatementFormatText StatementFormat = "text"
	StatementFormatHTML StatementFormat = "html"
	StatementFormatJSON StatementFormat = "json"
	StatementFormatPDF  StatementFormat = "pdf"
)

func (f StatementFormat) String() string {
	return string(f)
}

// Validate checks that the format is one of the supported values.
// An empty format is allowed and defaults to text.
func (f StatementFormat) Validate() error {
	switch f {
	case StatementFormatText, StatementFormatHTML, StatementFormatJSON, StatementFormatPDF, "":
		return nil
	default:
		return ierr.NewErrorf("invalid statement format: %s", f).
			WithHintf("Format %s is not supported", f).
			Mark(ierr.ErrValidation)
	}
}

package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/stagebill/stagebill/internal/config"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/types"
)

// Formatter renders integer minor-unit amounts as locale-correct
// currency text, e.g. 173000 -> "$1,730.00" for usd/en-US.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for the given ISO currency code and
// BCP 47 locale.
func NewFormatter(code string, locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Locale %s is not recognized", locale).
			WithReportableDetails(map[string]any{
				"locale": locale,
			}).
			Mark(ierr.ErrValidation)
	}
	return &Formatter{
		symbol:  types.GetCurrencySymbol(code),
		printer: message.NewPrinter(tag),
	}, nil
}

// NewFormatterFromConfig builds the formatter the statement service uses.
func NewFormatterFromConfig(cfg *config.Configuration) (*Formatter, error) {
	return NewFormatter(cfg.Statement.Currency, cfg.Statement.Locale)
}

// Format renders minor units with two fraction digits and locale-aware
// digit grouping. The minor-to-major conversion stays exact; only the
// final textual rendering goes through the locale engine.
func (f *Formatter) Format(minorUnits int64) string {
	major := decimal.NewFromInt(minorUnits).Div(decimal.NewFromInt(100))
	val, _ := major.Float64()
	return f.printer.Sprintf("%s%v", f.symbol,
		number.Decimal(val,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
}

package render

import (
	"fmt"
	"strings"

	"github.com/stagebill/stagebill/internal/currency"
	"github.com/stagebill/stagebill/internal/domain/statement"
)

// TextRenderer renders a statement as plain text, one line per
// performance in input order.
type TextRenderer struct {
	currency *currency.Formatter
}

func NewTextRenderer(currency *currency.Formatter) *TextRenderer {
	return &TextRenderer{currency: currency}
}

func (r *TextRenderer) Render(data *statement.StatementData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Statement for %s\n", data.Customer)
	for _, perf := range data.Performances {
		fmt.Fprintf(&sb, "  %s: %s (%d seats)\n",
			perf.Play.Name, r.currency.Format(perf.Amount), perf.Performance.Audience)
	}
	fmt.Fprintf(&sb, "Amount owed is %s\n", r.currency.Format(data.TotalAmount))
	fmt.Fprintf(&sb, "You earned %d credits\n", data.TotalVolumeCredits)
	return sb.String()
}

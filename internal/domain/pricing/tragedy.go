package pricing

import (
	"github.com/stagebill/stagebill/internal/domain/invoice"
)

// tragedyCalculator prices tragedies: 400.00 base plus 10.00 per
// attendee above 30. Volume credits follow the default rule.
type tragedyCalculator struct {
	baseCalculator
}

func (tragedyCalculator) AmountFor(perf *invoice.Performance) int64 {
	amount := int64(40000)
	if perf.Audience > 30 {
		amount += 1000 * int64(perf.Audience-30)
	}
	return amount
}

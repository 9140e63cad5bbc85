package pricing

import (
	"github.com/stagebill/stagebill/internal/domain/invoice"
)

// comedyCalculator prices comedies: 300.00 base, a 100.00 surcharge plus
// 5.00 per attendee above 20, and 3.00 per attendee regardless of size.
// Comedies add one credit per five attendees on top of the default rule.
type comedyCalculator struct {
	baseCalculator
}

func (comedyCalculator) AmountFor(perf *invoice.Performance) int64 {
	amount := int64(30000)
	if perf.Audience > 20 {
		amount += 10000 + 500*int64(perf.Audience-20)
	}
	amount += 300 * int64(perf.Audience)
	return amount
}

func (c comedyCalculator) VolumeCreditsFor(perf *invoice.Performance) int {
	return c.baseCalculator.VolumeCreditsFor(perf) + perf.Audience/5
}

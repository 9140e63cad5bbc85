package pricing

import (
	"github.com/stagebill/stagebill/internal/domain/invoice"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/types"
)

// Calculator computes the monetary amount (in minor units) and the
// volume credits earned for one performance. Implementations hold no
// state; a single shared instance serves all calls.
type Calculator interface {
	AmountFor(perf *invoice.Performance) int64
	VolumeCreditsFor(perf *invoice.Performance) int
}

// baseCalculator carries the default volume-credit rule inherited by all
// genres: one credit per attendee above 30.
type baseCalculator struct{}

func (baseCalculator) VolumeCreditsFor(perf *invoice.Performance) int {
	if perf.Audience > 30 {
		return perf.Audience - 30
	}
	return 0
}

// calculators holds the shared stateless instance per genre.
var calculators = map[types.Genre]Calculator{
	types.GenreTragedy: tragedyCalculator{},
	types.GenreComedy:  comedyCalculator{},
}

// CalculatorFor returns the pricing calculator registered for the genre.
func CalculatorFor(genre types.Genre) (Calculator, error) {
	calc, ok := calculators[genre]
	if !ok {
		return nil, ierr.NewErrorf("%s: unknown genre", genre).
			WithHintf("No pricing rule is registered for genre %s", genre).
			WithReportableDetails(map[string]any{
				"genre": genre.String(),
			}).
			Mark(ierr.ErrUnknownGenre)
	}
	return calc, nil
}

package statement

import (
	"github.com/samber/lo"

	"github.com/stagebill/stagebill/internal/domain/invoice"
	"github.com/stagebill/stagebill/internal/domain/play"
)

// EnrichedPerformance joins a raw performance with its resolved play and
// the computed financial fields. It borrows the performance and play; it
// lives only for the duration of one statement build.
type EnrichedPerformance struct {
	Performance   *invoice.Performance `json:"performance"`
	Play          *play.Play           `json:"play"`
	Amount        int64                `json:"amount"`
	VolumeCredits int                  `json:"volume_credits"`
}

// StatementData is the complete immutable snapshot consumed by renderers.
// Built once per statement call and never mutated after construction.
type StatementData struct {
	Customer           string                `json:"customer"`
	Performances       []EnrichedPerformance `json:"performances"`
	TotalAmount        int64                 `json:"total_amount"`
	TotalVolumeCredits int                   `json:"total_volume_credits"`
}

// Aggregate sums amounts and volume credits over the enriched
// performances. Pure integer summation, order-independent.
func Aggregate(performances []EnrichedPerformance) (totalAmount int64, totalVolumeCredits int) {
	totalAmount = lo.SumBy(performances, func(p EnrichedPerformance) int64 {
		return p.Amount
	})
	totalVolumeCredits = lo.SumBy(performances, func(p EnrichedPerformance) int {
		return p.VolumeCredits
	})
	return totalAmount, totalVolumeCredits
}

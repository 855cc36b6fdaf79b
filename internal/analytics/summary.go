package analytics

import (
	"math"

	"bikepulse/internal/dataset"
)

// Summarize computes the KPI card values for a filtered daily table.
//
// Percentages are shares of the total count: casual_pct + registered_pct is
// 100 (within floating tolerance) whenever the total is nonzero. An empty
// table or a zero total makes the averages and percentages NaN rather than
// raising a division error.
func Summarize(days dataset.DayTable) Summary {
	var casual, registered, total int
	for _, r := range days {
		casual += r.Casual
		registered += r.Registered
		total += r.Count
	}

	s := Summary{
		TotalRentals:  total,
		AvgDaily:      Metric(math.NaN()),
		CasualPct:     Metric(math.NaN()),
		RegisteredPct: Metric(math.NaN()),
	}
	if len(days) > 0 {
		s.AvgDaily = Metric(float64(total) / float64(len(days)))
	}
	if total > 0 {
		s.CasualPct = Metric(float64(casual) / float64(total) * 100)
		s.RegisteredPct = Metric(float64(registered) / float64(total) * 100)
	}
	return s
}

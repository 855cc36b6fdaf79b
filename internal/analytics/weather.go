package analytics

import (
	"sort"

	"bikepulse/internal/dataset"
)

// WeatherDistribution returns the five-number summary of daily rental counts
// per weather label, feeding the weather box plot. Labels with no rows are
// absent from the map.
func WeatherDistribution(days dataset.DayTable) map[string]BoxStats {
	groups := make(map[string][]float64)
	for _, r := range days {
		groups[r.Weather] = append(groups[r.Weather], float64(r.Count))
	}

	stats := make(map[string]BoxStats, len(groups))
	for label, values := range groups {
		sort.Float64s(values)
		stats[label] = BoxStats{
			Min:    values[0],
			Q1:     quantile(values, 0.25),
			Median: quantile(values, 0.5),
			Q3:     quantile(values, 0.75),
			Max:    values[len(values)-1],
			Count:  len(values),
		}
	}
	return stats
}

// TemperatureScatter projects the filtered daily table onto (temperature,
// count) points tagged with their season, in input row order.
func TemperatureScatter(days dataset.DayTable) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(days))
	for _, r := range days {
		points = append(points, ScatterPoint{
			Temp:   r.Temp,
			Count:  r.Count,
			Season: r.Season,
		})
	}
	return points
}

// quantile returns the p-quantile of sorted values using linear
// interpolation between order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(pos)
	frac := pos - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

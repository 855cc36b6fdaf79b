package analytics

import (
	"bikepulse/internal/dataset"
)

// HourlyAverages returns the mean casual, registered and total rentals per
// hour of day. Hours absent from the filtered subset are absent from the map.
func HourlyAverages(hours dataset.HourTable) map[int]HourAverages {
	type acc struct {
		casual, registered, count, n int
	}
	groups := make(map[int]*acc)
	for _, r := range hours {
		g := groups[r.Hour]
		if g == nil {
			g = &acc{}
			groups[r.Hour] = g
		}
		g.casual += r.Casual
		g.registered += r.Registered
		g.count += r.Count
		g.n++
	}

	averages := make(map[int]HourAverages, len(groups))
	for hour, g := range groups {
		averages[hour] = HourAverages{
			AvgCasual:     float64(g.casual) / float64(g.n),
			AvgRegistered: float64(g.registered) / float64(g.n),
			AvgCount:      float64(g.count) / float64(g.n),
		}
	}
	return averages
}

// HourWeekdayPivot returns the mean rental count per (hour, weekday label)
// cell, feeding the hour-by-weekday heatmap. Combinations with no rows have
// no cell; an absent cell is undefined, not zero.
func HourWeekdayPivot(hours dataset.HourTable) map[int]map[string]float64 {
	type acc struct {
		count, n int
	}
	groups := make(map[int]map[string]*acc)
	for _, r := range hours {
		byDay := groups[r.Hour]
		if byDay == nil {
			byDay = make(map[string]*acc)
			groups[r.Hour] = byDay
		}
		g := byDay[r.Weekday]
		if g == nil {
			g = &acc{}
			byDay[r.Weekday] = g
		}
		g.count += r.Count
		g.n++
	}

	pivot := make(map[int]map[string]float64, len(groups))
	for hour, byDay := range groups {
		cells := make(map[string]float64, len(byDay))
		for label, g := range byDay {
			cells[label] = float64(g.count) / float64(g.n)
		}
		pivot[hour] = cells
	}
	return pivot
}

package analytics

import (
	"sort"

	"bikepulse/internal/dataset"
)

// DailySeries projects a filtered daily table onto the time-series chart:
// one point per date with total, registered and casual counts, ordered by
// date ascending.
func DailySeries(days dataset.DayTable) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(days))
	for _, r := range days {
		points = append(points, SeriesPoint{
			Date:       r.Date,
			Total:      r.Count,
			Registered: r.Registered,
			Casual:     r.Casual,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// FilterOptions lists the selectable filter values present in the loaded
// daily table: the distinct years, the categorical labels that actually
// occur (in canonical code order, with Unknown last when present), and the
// full date range.
func FilterOptions(days dataset.DayTable) Options {
	opts := Options{Years: days.Years()}

	present := func(get func(dataset.DayRecord) string) map[string]bool {
		set := make(map[string]bool)
		for _, r := range days {
			set[get(r)] = true
		}
		return set
	}

	seasons := present(func(r dataset.DayRecord) string { return r.Season })
	for _, label := range dataset.SeasonLabels() {
		if seasons[label] {
			opts.Seasons = append(opts.Seasons, label)
		}
	}
	if seasons[dataset.LabelUnknown] {
		opts.Seasons = append(opts.Seasons, dataset.LabelUnknown)
	}

	weather := present(func(r dataset.DayRecord) string { return r.Weather })
	for _, label := range dataset.WeatherLabels() {
		if weather[label] {
			opts.Weather = append(opts.Weather, label)
		}
	}
	if weather[dataset.LabelUnknown] {
		opts.Weather = append(opts.Weather, dataset.LabelUnknown)
	}

	if first, last, ok := days.DateBounds(); ok {
		opts.FirstDay = first
		opts.LastDay = last
	}
	return opts
}

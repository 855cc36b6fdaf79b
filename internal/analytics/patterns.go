package analytics

import (
	"bikepulse/internal/dataset"
)

// WeeklyPattern returns the mean casual and registered rentals per weekday
// label. Weekdays with no rows in the filtered subset are absent from the
// map, not zero-filled.
func WeeklyPattern(days dataset.DayTable) map[string]UserAverages {
	type acc struct {
		casual, registered, n int
	}
	groups := make(map[string]*acc)
	for _, r := range days {
		g := groups[r.Weekday]
		if g == nil {
			g = &acc{}
			groups[r.Weekday] = g
		}
		g.casual += r.Casual
		g.registered += r.Registered
		g.n++
	}

	pattern := make(map[string]UserAverages, len(groups))
	for label, g := range groups {
		pattern[label] = UserAverages{
			AvgCasual:     float64(g.casual) / float64(g.n),
			AvgRegistered: float64(g.registered) / float64(g.n),
		}
	}
	return pattern
}

// WorkingDayPattern returns the mean casual and registered rentals grouped by
// the working-day flag. A side with no supporting rows stays nil.
func WorkingDayPattern(days dataset.DayTable) WorkingDayView {
	var (
		working, holiday       UserAverages
		workingN, holidayN     int
		workingCas, holidayCas int
		workingReg, holidayReg int
	)
	for _, r := range days {
		if r.WorkingDay {
			workingCas += r.Casual
			workingReg += r.Registered
			workingN++
		} else {
			holidayCas += r.Casual
			holidayReg += r.Registered
			holidayN++
		}
	}

	var view WorkingDayView
	if workingN > 0 {
		working = UserAverages{
			AvgCasual:     float64(workingCas) / float64(workingN),
			AvgRegistered: float64(workingReg) / float64(workingN),
		}
		view.WorkingDay = &working
	}
	if holidayN > 0 {
		holiday = UserAverages{
			AvgCasual:     float64(holidayCas) / float64(holidayN),
			AvgRegistered: float64(holidayReg) / float64(holidayN),
		}
		view.Holiday = &holiday
	}
	return view
}

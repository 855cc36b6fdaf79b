// Package filter narrows the loaded tables to the rows matching a
// user-selected set of criteria. Filtering is pure: inputs are never
// mutated, row order is preserved, and applying the same criteria twice
// yields the same result.
package filter

import (
	"time"

	"bikepulse/internal/dataset"
)

// Criteria is one user-chosen filter selection. All provided predicates are
// AND-combined.
//
// An empty Seasons or Weather slice means "no restriction on this dimension",
// not "match nothing". That mirrors the dashboard's multi-select controls,
// where clearing a selection shows everything; a caller that wants
// empty-selection-as-exclude must convert before calling.
type Criteria struct {
	// Year restricts rows to a single calendar year. Zero means no
	// restriction.
	Year int

	// Seasons and Weather restrict rows to the given labels. Empty means no
	// restriction.
	Seasons []string
	Weather []string

	// From and To bound the date inclusively on both ends. A zero time leaves
	// that end unbounded. From after To matches nothing; that is an empty
	// result, not an error.
	From time.Time
	To   time.Time
}

// IsZero reports whether the criteria restrict nothing.
func (c Criteria) IsZero() bool {
	return c.Year == 0 && len(c.Seasons) == 0 && len(c.Weather) == 0 &&
		c.From.IsZero() && c.To.IsZero()
}

// Days returns the daily rows matching c, in input order.
func Days(table dataset.DayTable, c Criteria) dataset.DayTable {
	seasons := toSet(c.Seasons)
	weather := toSet(c.Weather)
	out := make(dataset.DayTable, 0, len(table))
	for _, r := range table {
		if matches(r, c, seasons, weather) {
			out = append(out, r)
		}
	}
	return out
}

// Hours returns the hourly rows matching c, in input order. The criteria
// predicates all apply to the shared daily fields, so daily and hourly
// filtering stay consistent.
func Hours(table dataset.HourTable, c Criteria) dataset.HourTable {
	seasons := toSet(c.Seasons)
	weather := toSet(c.Weather)
	out := make(dataset.HourTable, 0, len(table))
	for _, r := range table {
		if matches(r.DayRecord, c, seasons, weather) {
			out = append(out, r)
		}
	}
	return out
}

// matches checks every provided predicate; a row passes only on full
// conjunction.
func matches(r dataset.DayRecord, c Criteria, seasons, weather map[string]bool) bool {
	if c.Year != 0 && r.Date.Year() != c.Year {
		return false
	}
	if len(seasons) > 0 && !seasons[r.Season] {
		return false
	}
	if len(weather) > 0 && !weather[r.Weather] {
		return false
	}
	if !c.From.IsZero() && r.Date.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && r.Date.After(c.To) {
		return false
	}
	return true
}

func toSet(labels []string) map[string]bool {
	if len(labels) == 0 {
		return nil
	}
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	return set
}

package dataset

import (
	"sort"
	"time"
)

// LabelUnknown is assigned to any categorical code outside the documented
// range. Rows carrying it group into their own bucket instead of being
// dropped or erroring the load.
const LabelUnknown = "Unknown"

// Categorical code-to-label maps for the upstream integer coding.
// The codes are a contract with the data source: season 1-4, weathersit 1-4,
// weekday 0-6.
var (
	seasonLabels = map[int]string{
		1: "Winter",
		2: "Spring",
		3: "Summer",
		4: "Fall",
	}
	weatherLabels = map[int]string{
		1: "Clear",
		2: "Mist",
		3: "Light Rain/Snow",
		4: "Heavy Rain/Snow",
	}
	weekdayLabels = map[int]string{
		0: "Sunday",
		1: "Monday",
		2: "Tuesday",
		3: "Wednesday",
		4: "Thursday",
		5: "Friday",
		6: "Saturday",
	}
)

// SeasonLabels returns the known season labels in code order.
func SeasonLabels() []string {
	return []string{"Winter", "Spring", "Summer", "Fall"}
}

// WeatherLabels returns the known weather labels in code order.
func WeatherLabels() []string {
	return []string{"Clear", "Mist", "Light Rain/Snow", "Heavy Rain/Snow"}
}

// WeekdayLabels returns the weekday labels in code order (Sunday first, as
// coded by the data source).
func WeekdayLabels() []string {
	return []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}

// SeasonLabel maps a season code to its label.
func SeasonLabel(code int) string {
	if label, ok := seasonLabels[code]; ok {
		return label
	}
	return LabelUnknown
}

// WeatherLabel maps a weathersit code to its label.
func WeatherLabel(code int) string {
	if label, ok := weatherLabels[code]; ok {
		return label
	}
	return LabelUnknown
}

// WeekdayLabel maps a weekday code to its label.
func WeekdayLabel(code int) string {
	if label, ok := weekdayLabels[code]; ok {
		return label
	}
	return LabelUnknown
}

// DayRecord is one row of the daily table: the rentals and conditions of a
// single calendar date. Count is casual plus registered in well-formed input.
type DayRecord struct {
	Date       time.Time `json:"date"`
	Season     string    `json:"season"`
	Weather    string    `json:"weather"`
	Weekday    string    `json:"weekday"`
	WorkingDay bool      `json:"working_day"`
	Temp       float64   `json:"temp"`
	ATemp      float64   `json:"atemp"`
	Humidity   float64   `json:"humidity"`
	Windspeed  float64   `json:"windspeed"`
	Casual     int       `json:"casual"`
	Registered int       `json:"registered"`
	Count      int       `json:"count"`
}

// HourRecord is one row of the hourly table. Its date references a row of the
// daily table.
type HourRecord struct {
	DayRecord
	Hour int `json:"hour"`
}

// DayTable is the in-memory daily table, in source row order.
type DayTable []DayRecord

// HourTable is the in-memory hourly table, in source row order.
type HourTable []HourRecord

// DateBounds returns the earliest and latest dates in the table. ok is false
// for an empty table.
func (t DayTable) DateBounds() (first, last time.Time, ok bool) {
	if len(t) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = t[0].Date, t[0].Date
	for _, r := range t[1:] {
		if r.Date.Before(first) {
			first = r.Date
		}
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return first, last, true
}

// Years returns the distinct calendar years present in the table, ascending.
func (t DayTable) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range t {
		y := r.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

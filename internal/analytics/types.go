package analytics

import (
	"encoding/json"
	"math"
	"time"
)

// Metric is a float64 that encodes NaN as JSON null. encoding/json refuses
// NaN outright, but NaN is this package's sentinel for an undefined
// aggregation, so it has to cross the API boundary.
type Metric float64

// MarshalJSON implements json.Marshaler.
func (m Metric) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(m)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON implements json.Unmarshaler; null decodes back to NaN.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Metric(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Metric(f)
	return nil
}

// IsNaN reports whether the metric is the undefined sentinel.
func (m Metric) IsNaN() bool {
	return math.IsNaN(float64(m))
}

// NaN returns the undefined metric sentinel.
func NaN() Metric {
	return Metric(math.NaN())
}

// Summary carries the KPI card values for a filtered daily table.
type Summary struct {
	TotalRentals  int    `json:"total_rentals"`
	AvgDaily      Metric `json:"avg_daily"`
	CasualPct     Metric `json:"casual_pct"`
	RegisteredPct Metric `json:"registered_pct"`
}

// UserAverages is the mean casual and registered rentals of one group.
type UserAverages struct {
	AvgCasual     float64 `json:"avg_casual"`
	AvgRegistered float64 `json:"avg_registered"`
}

// WorkingDayView splits user averages by the working-day flag. A side with no
// supporting rows is nil.
type WorkingDayView struct {
	WorkingDay *UserAverages `json:"working_day,omitempty"`
	Holiday    *UserAverages `json:"holiday,omitempty"`
}

// Correlation is a symmetric Pearson correlation matrix over the numeric
// daily fields. Matrix[i][j] correlates Fields[i] with Fields[j]; an
// undefined entry (zero variance in the filtered subset) is NaN.
type Correlation struct {
	Fields []string   `json:"fields"`
	Matrix [][]Metric `json:"matrix"`
}

// HourAverages is the mean rentals of one hour of day across the filtered
// hourly table.
type HourAverages struct {
	AvgCasual     float64 `json:"avg_casual"`
	AvgRegistered float64 `json:"avg_registered"`
	AvgCount      float64 `json:"avg_count"`
}

// SeriesPoint is one date of the time-series chart.
type SeriesPoint struct {
	Date       time.Time `json:"date"`
	Total      int       `json:"total"`
	Registered int       `json:"registered"`
	Casual     int       `json:"casual"`
}

// BoxStats is the five-number summary of rental counts for one group,
// feeding the box plot.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// ScatterPoint is one daily observation of the temperature scatter chart.
type ScatterPoint struct {
	Temp   float64 `json:"temp"`
	Count  int     `json:"count"`
	Season string  `json:"season"`
}

// Options lists the filter values present in the loaded data, for populating
// the dashboard's selection controls.
type Options struct {
	Years    []int     `json:"years"`
	Seasons  []string  `json:"seasons"`
	Weather  []string  `json:"weather"`
	FirstDay time.Time `json:"first_day"`
	LastDay  time.Time `json:"last_day"`
}

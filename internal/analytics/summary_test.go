package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikepulse/internal/dataset"
)

func TestSummarizeSingleDay(t *testing.T) {
	days := dataset.DayTable{{
		Date:       time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
		Season:     "Winter",
		Weather:    "Clear",
		Weekday:    "Saturday",
		Casual:     100,
		Registered: 400,
		Count:      500,
	}}

	s := Summarize(days)
	assert.Equal(t, 500, s.TotalRentals)
	assert.InDelta(t, 500, float64(s.AvgDaily), 1e-9)
	assert.InDelta(t, 20.0, float64(s.CasualPct), 1e-9)
	assert.InDelta(t, 80.0, float64(s.RegisteredPct), 1e-9)
}

func TestSummarizePercentagesSumTo100(t *testing.T) {
	days := dataset.DayTable{
		{Casual: 131, Registered: 670, Count: 801},
		{Casual: 120, Registered: 1229, Count: 1349},
		{Casual: 108, Registered: 1454, Count: 1562},
	}

	s := Summarize(days)
	total := 0
	for _, r := range days {
		total += r.Count
	}
	assert.Equal(t, total, s.TotalRentals)
	assert.InDelta(t, 100.0, float64(s.CasualPct)+float64(s.RegisteredPct), 1e-9)
}

func TestSummarizeEmptyTable(t *testing.T) {
	s := Summarize(dataset.DayTable{})
	assert.Equal(t, 0, s.TotalRentals)
	assert.True(t, s.AvgDaily.IsNaN())
	assert.True(t, s.CasualPct.IsNaN())
	assert.True(t, s.RegisteredPct.IsNaN())
}

func TestSummarizeZeroCounts(t *testing.T) {
	// Rows exist but nobody rented; the average is defined, the percentage
	// split is not.
	s := Summarize(dataset.DayTable{{Count: 0}, {Count: 0}})
	assert.Equal(t, 0, s.TotalRentals)
	assert.InDelta(t, 0, float64(s.AvgDaily), 1e-9)
	assert.True(t, s.CasualPct.IsNaN())
	assert.True(t, s.RegisteredPct.IsNaN())
}

func TestSummaryMarshalsNaNAsNull(t *testing.T) {
	data, err := json.Marshal(Summarize(dataset.DayTable{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_rentals":0,"avg_daily":null,"casual_pct":null,"registered_pct":null}`, string(data))
}

func TestMetricRoundTrip(t *testing.T) {
	var m Metric
	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.True(t, m.IsNaN())

	require.NoError(t, json.Unmarshal([]byte("42.5"), &m))
	assert.InDelta(t, 42.5, float64(m), 1e-9)

	data, err := json.Marshal(Metric(42.5))
	require.NoError(t, err)
	assert.Equal(t, "42.5", string(data))
}

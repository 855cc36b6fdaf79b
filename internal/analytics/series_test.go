package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikepulse/internal/dataset"
)

func TestDailySeries(t *testing.T) {
	days := dataset.DayTable{
		{Date: time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC), Count: 801, Registered: 670, Casual: 131},
		{Date: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), Count: 500, Registered: 400, Casual: 100},
	}

	points := DailySeries(days)
	require.Len(t, points, 2)
	assert.Equal(t, time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, 500, points[0].Total)
	assert.Equal(t, 801, points[1].Total)
	assert.Equal(t, 670, points[1].Registered)
	assert.Equal(t, 131, points[1].Casual)

	assert.Empty(t, DailySeries(dataset.DayTable{}))
}

func TestFilterOptions(t *testing.T) {
	days := dataset.DayTable{
		{Date: time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC), Season: "Summer", Weather: "Clear"},
		{Date: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), Season: "Winter", Weather: "Mist"},
		{Date: time.Date(2011, 7, 1, 0, 0, 0, 0, time.UTC), Season: "Summer", Weather: dataset.LabelUnknown},
	}

	opts := FilterOptions(days)
	assert.Equal(t, []int{2011, 2012}, opts.Years)
	assert.Equal(t, []string{"Winter", "Summer"}, opts.Seasons)
	assert.Equal(t, []string{"Clear", "Mist", dataset.LabelUnknown}, opts.Weather)
	assert.Equal(t, time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), opts.FirstDay)
	assert.Equal(t, time.Date(2012, 6, 1, 0, 0, 0, 0, time.UTC), opts.LastDay)
}

func TestFilterOptionsEmpty(t *testing.T) {
	opts := FilterOptions(dataset.DayTable{})
	assert.Empty(t, opts.Years)
	assert.Empty(t, opts.Seasons)
	assert.Empty(t, opts.Weather)
	assert.True(t, opts.FirstDay.IsZero())
	assert.True(t, opts.LastDay.IsZero())
}

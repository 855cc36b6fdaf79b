package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikepulse/internal/dataset"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func sampleDays() dataset.DayTable {
	return dataset.DayTable{
		{Date: date(2011, 1, 1), Season: "Winter", Weather: "Clear", Weekday: "Saturday", Count: 500},
		{Date: date(2011, 4, 15), Season: "Spring", Weather: "Mist", Weekday: "Friday", Count: 800},
		{Date: date(2011, 7, 20), Season: "Summer", Weather: "Clear", Weekday: "Wednesday", Count: 1200},
		{Date: date(2012, 1, 5), Season: "Winter", Weather: "Light Rain/Snow", Weekday: "Thursday", Count: 300},
		{Date: date(2012, 10, 1), Season: "Fall", Weather: "Clear", Weekday: "Monday", Count: 900},
	}
}

func TestDaysNoCriteria(t *testing.T) {
	table := sampleDays()
	got := Days(table, Criteria{})
	assert.Equal(t, table, got)
}

func TestDaysYear(t *testing.T) {
	got := Days(sampleDays(), Criteria{Year: 2012})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, 2012, r.Date.Year())
	}
}

func TestDaysYearNoMatch(t *testing.T) {
	got := Days(sampleDays(), Criteria{Year: 2013})
	assert.Empty(t, got)
}

func TestDaysSeasonAndWeather(t *testing.T) {
	got := Days(sampleDays(), Criteria{
		Seasons: []string{"Winter", "Summer"},
		Weather: []string{"Clear"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, date(2011, 1, 1), got[0].Date)
	assert.Equal(t, date(2011, 7, 20), got[1].Date)
}

func TestDaysEmptySelectionMeansNoRestriction(t *testing.T) {
	table := sampleDays()
	got := Days(table, Criteria{Seasons: []string{}, Weather: []string{}})
	assert.Equal(t, table, got)
}

func TestDaysDateRange(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		got := Days(sampleDays(), Criteria{From: date(2011, 4, 15), To: date(2012, 1, 5)})
		require.Len(t, got, 3)
		assert.Equal(t, date(2011, 4, 15), got[0].Date)
		assert.Equal(t, date(2012, 1, 5), got[2].Date)
	})

	t.Run("start after end matches nothing", func(t *testing.T) {
		got := Days(sampleDays(), Criteria{From: date(2011, 3, 1), To: date(2011, 1, 1)})
		assert.Empty(t, got)
	})

	t.Run("open ended", func(t *testing.T) {
		got := Days(sampleDays(), Criteria{From: date(2012, 1, 1)})
		assert.Len(t, got, 2)
	})
}

func TestDaysConjunction(t *testing.T) {
	c := Criteria{
		Year:    2011,
		Seasons: []string{"Winter", "Spring", "Summer"},
		Weather: []string{"Clear"},
		From:    date(2011, 1, 1),
		To:      date(2011, 12, 31),
	}
	got := Days(sampleDays(), c)
	for _, r := range got {
		assert.Equal(t, 2011, r.Date.Year())
		assert.Contains(t, c.Seasons, r.Season)
		assert.Contains(t, c.Weather, r.Weather)
		assert.False(t, r.Date.Before(c.From))
		assert.False(t, r.Date.After(c.To))
	}
	require.Len(t, got, 2)
}

func TestDaysIdempotent(t *testing.T) {
	c := Criteria{Year: 2011, Weather: []string{"Clear", "Mist"}}
	once := Days(sampleDays(), c)
	twice := Days(once, c)
	assert.Equal(t, once, twice)
}

func TestDaysPreservesOrder(t *testing.T) {
	got := Days(sampleDays(), Criteria{Weather: []string{"Clear"}})
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.Before(got[1].Date))
	assert.True(t, got[1].Date.Before(got[2].Date))
}

func TestDaysDoesNotMutateInput(t *testing.T) {
	table := sampleDays()
	want := sampleDays()
	Days(table, Criteria{Year: 2011})
	assert.Equal(t, want, table)
}

func TestHours(t *testing.T) {
	table := dataset.HourTable{
		{DayRecord: dataset.DayRecord{Date: date(2011, 1, 1), Season: "Winter", Weather: "Clear"}, Hour: 8},
		{DayRecord: dataset.DayRecord{Date: date(2011, 1, 1), Season: "Winter", Weather: "Mist"}, Hour: 9},
		{DayRecord: dataset.DayRecord{Date: date(2012, 6, 1), Season: "Summer", Weather: "Clear"}, Hour: 8},
	}

	t.Run("no criteria", func(t *testing.T) {
		assert.Equal(t, table, Hours(table, Criteria{}))
	})

	t.Run("year and weather", func(t *testing.T) {
		got := Hours(table, Criteria{Year: 2011, Weather: []string{"Clear"}})
		require.Len(t, got, 1)
		assert.Equal(t, 8, got[0].Hour)
		assert.Equal(t, date(2011, 1, 1), got[0].Date)
	})
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{Seasons: []string{}}.IsZero())
	assert.False(t, Criteria{Year: 2011}.IsZero())
	assert.False(t, Criteria{From: date(2011, 1, 1)}.IsZero())
	assert.False(t, Criteria{Weather: []string{"Clear"}}.IsZero())
}

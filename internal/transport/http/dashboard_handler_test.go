package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bikepulse/internal/analytics"
	apierrors "bikepulse/internal/errors"
	"bikepulse/internal/filter"
	"bikepulse/internal/services"
)

// MockDashboardService is a mock implementation of DashboardServiceInterface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, c filter.Criteria) (analytics.Summary, error) {
	args := m.Called(c)
	return args.Get(0).(analytics.Summary), args.Error(1)
}

func (m *MockDashboardService) DailySeries(ctx context.Context, c filter.Criteria, preset string) ([]analytics.SeriesPoint, error) {
	args := m.Called(c, preset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.SeriesPoint), args.Error(1)
}

func (m *MockDashboardService) WeeklyPattern(ctx context.Context, c filter.Criteria) (map[string]analytics.UserAverages, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]analytics.UserAverages), args.Error(1)
}

func (m *MockDashboardService) WorkingDayPattern(ctx context.Context, c filter.Criteria) (analytics.WorkingDayView, error) {
	args := m.Called(c)
	return args.Get(0).(analytics.WorkingDayView), args.Error(1)
}

func (m *MockDashboardService) WeatherDistribution(ctx context.Context, c filter.Criteria) (map[string]analytics.BoxStats, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]analytics.BoxStats), args.Error(1)
}

func (m *MockDashboardService) TemperatureScatter(ctx context.Context, c filter.Criteria) ([]analytics.ScatterPoint, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.ScatterPoint), args.Error(1)
}

func (m *MockDashboardService) Correlation(ctx context.Context, c filter.Criteria) (analytics.Correlation, error) {
	args := m.Called(c)
	return args.Get(0).(analytics.Correlation), args.Error(1)
}

func (m *MockDashboardService) HourlyAverages(ctx context.Context, c filter.Criteria) (map[int]analytics.HourAverages, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]analytics.HourAverages), args.Error(1)
}

func (m *MockDashboardService) HourWeekdayPivot(ctx context.Context, c filter.Criteria) (map[int]map[string]float64, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]map[string]float64), args.Error(1)
}

func (m *MockDashboardService) FilterOptions(ctx context.Context) (analytics.Options, error) {
	args := m.Called()
	return args.Get(0).(analytics.Options), args.Error(1)
}

func (m *MockDashboardService) Ready(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

func newTestHandler(t *testing.T) (*DashboardHandler, *MockDashboardService) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := &MockDashboardService{}
	return NewDashboardHandler(svc, logger, apierrors.NewErrorHandler(logger)), svc
}

func get(t *testing.T, h *DashboardHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestGetSummary(t *testing.T) {
	h, svc := newTestHandler(t)

	want := filter.Criteria{
		Year:    2011,
		Seasons: []string{"Winter", "Spring"},
		From:    time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	svc.On("Summary", want).Return(analytics.Summary{
		TotalRentals:  2650,
		AvgDaily:      analytics.Metric(662.5),
		CasualPct:     analytics.Metric(20),
		RegisteredPct: analytics.Metric(80),
	}, nil)

	rec := get(t, h, "/summary?year=2011&season=Winter&season=Spring&from=2011-01-01")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2650), body["total_rentals"])
	assert.Equal(t, 662.5, body["avg_daily"])
	svc.AssertExpectations(t)
}

func TestGetSummaryRejectsUnknownSeasonLabel(t *testing.T) {
	h, svc := newTestHandler(t)

	rec := get(t, h, "/summary?season=Monsoon")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	svc.AssertNotCalled(t, "Summary", mock.Anything)
}

func TestGetSummaryRejectsMalformedDate(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(t, h, "/summary?from=01/02/2011")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummaryAcceptsSlashLabels(t *testing.T) {
	h, svc := newTestHandler(t)

	want := filter.Criteria{Weather: []string{"Light Rain/Snow"}}
	svc.On("Summary", want).Return(analytics.Summary{}, nil)

	rec := get(t, h, "/summary?weather=Light+Rain%2FSnow")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetSummaryDatasetUnavailable(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.On("Summary", filter.Criteria{}).
		Return(analytics.Summary{}, services.ErrDatasetUnavailable)

	rec := get(t, h, "/summary")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATASET_UNAVAILABLE")
}

func TestGetDailySeriesPassesPreset(t *testing.T) {
	h, svc := newTestHandler(t)

	points := []analytics.SeriesPoint{{
		Date:       time.Date(2012, 7, 1, 0, 0, 0, 0, time.UTC),
		Total:      120,
		Registered: 90,
		Casual:     30,
	}}
	svc.On("DailySeries", filter.Criteria{}, "1m").Return(points, nil)

	rec := get(t, h, "/daily-series?range=1m")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []analytics.SeriesPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, points, got)
	svc.AssertExpectations(t)
}

func TestGetDailySeriesRejectsUnknownPreset(t *testing.T) {
	h, svc := newTestHandler(t)

	rec := get(t, h, "/daily-series?range=2w")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DailySeries", mock.Anything, mock.Anything)
}

func TestGetCorrelationRendersNaNAsNull(t *testing.T) {
	h, svc := newTestHandler(t)

	corr := analytics.Correlation{
		Fields: []string{"temp", "cnt"},
		Matrix: [][]analytics.Metric{
			{1, analytics.NaN()},
			{analytics.NaN(), 1},
		},
	}
	svc.On("Correlation", filter.Criteria{}).Return(corr, nil)

	rec := get(t, h, "/correlation")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "null")
	assert.NotContains(t, rec.Body.String(), "NaN")
}

func TestGetFilterOptions(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.On("FilterOptions").Return(analytics.Options{
		Years:    []int{2011, 2012},
		Seasons:  []string{"Winter", "Spring", "Summer", "Fall"},
		Weather:  []string{"Clear", "Mist"},
		FirstDay: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC),
		LastDay:  time.Date(2012, 12, 31, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := get(t, h, "/filters")

	require.Equal(t, http.StatusOK, rec.Code)
	var got analytics.Options
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []int{2011, 2012}, got.Years)
}

func TestGetHourWeekdayPivot(t *testing.T) {
	h, svc := newTestHandler(t)

	pivot := map[int]map[string]float64{8: {"Sunday": 235}}
	svc.On("HourWeekdayPivot", filter.Criteria{}).Return(pivot, nil)

	rec := get(t, h, "/hour-weekday-heatmap")

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 235.0, got["8"]["Sunday"])
}

func TestParseCriteriaInvertedRangeIsPassedThrough(t *testing.T) {
	h, _ := newTestHandler(t)

	c, _, apiErr := h.parseCriteria(map[string][]string{
		"from": {"2012-06-01"},
		"to":   {"2012-01-01"},
	})

	require.Nil(t, apiErr)
	assert.True(t, c.From.After(c.To))
}

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := &MockDashboardService{}
	h := NewHealthHandler(svc, logger, "test")

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("ready", func(t *testing.T) {
		svc.On("Ready").Return(nil).Once()
		rec := httptest.NewRecorder()
		h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		svc.On("Ready").Return(services.ErrDatasetUnavailable).Once()
		rec := httptest.NewRecorder()
		h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

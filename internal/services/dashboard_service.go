package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bikepulse/internal/analytics"
	"bikepulse/internal/dataset"
	"bikepulse/internal/filter"
)

// SeriesPresets are the accepted range shortcuts of the daily series view,
// mirroring the chart's range selector buttons.
var SeriesPresets = []string{"1w", "1m", "3m", "6m", "1y", "all"}

// DashboardService computes the derived views the dashboard endpoints serve.
type DashboardService struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewDashboardService creates a dashboard service on top of the dataset
// store.
func NewDashboardService(store *dataset.Store, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: logger.With(slog.String("component", "dashboard_service")),
	}
}

// days loads the cached tables and returns the filtered daily table.
func (s *DashboardService) days(ctx context.Context, c filter.Criteria) (dataset.DayTable, error) {
	day, _, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	filtered := filter.Days(day, c)
	s.logger.DebugContext(ctx, "filtered daily table",
		slog.Int("rows_in", len(day)),
		slog.Int("rows_out", len(filtered)))
	return filtered, nil
}

// hours loads the cached tables and returns the filtered hourly table.
func (s *DashboardService) hours(ctx context.Context, c filter.Criteria) (dataset.HourTable, error) {
	_, hour, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	filtered := filter.Hours(hour, c)
	s.logger.DebugContext(ctx, "filtered hourly table",
		slog.Int("rows_in", len(hour)),
		slog.Int("rows_out", len(filtered)))
	return filtered, nil
}

// Summary returns the KPI card values for the filtered daily table.
func (s *DashboardService) Summary(ctx context.Context, c filter.Criteria) (analytics.Summary, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(days), nil
}

// DailySeries returns the time-series points for the filtered daily table.
// A non-empty preset narrows the series to a window ending at its last date:
// "1w", "1m", "3m", "6m", "1y" or "all".
func (s *DashboardService) DailySeries(ctx context.Context, c filter.Criteria, preset string) ([]analytics.SeriesPoint, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return nil, err
	}
	if preset != "" && preset != "all" {
		_, last, ok := days.DateBounds()
		if ok {
			from, err := presetStart(last, preset)
			if err != nil {
				return nil, err
			}
			days = filter.Days(days, filter.Criteria{From: from})
		} else if !validPreset(preset) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
		}
	}
	return analytics.DailySeries(days), nil
}

// presetStart computes the inclusive window start for a preset ending at
// last.
func presetStart(last time.Time, preset string) (time.Time, error) {
	switch preset {
	case "1w":
		return last.AddDate(0, 0, -7), nil
	case "1m":
		return last.AddDate(0, -1, 0), nil
	case "3m":
		return last.AddDate(0, -3, 0), nil
	case "6m":
		return last.AddDate(0, -6, 0), nil
	case "1y":
		return last.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

func validPreset(preset string) bool {
	for _, p := range SeriesPresets {
		if p == preset {
			return true
		}
	}
	return false
}

// WeeklyPattern returns mean rentals per weekday.
func (s *DashboardService) WeeklyPattern(ctx context.Context, c filter.Criteria) (map[string]analytics.UserAverages, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyPattern(days), nil
}

// WorkingDayPattern returns mean rentals split by the working-day flag.
func (s *DashboardService) WorkingDayPattern(ctx context.Context, c filter.Criteria) (analytics.WorkingDayView, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return analytics.WorkingDayView{}, err
	}
	return analytics.WorkingDayPattern(days), nil
}

// WeatherDistribution returns the per-weather box plot statistics.
func (s *DashboardService) WeatherDistribution(ctx context.Context, c filter.Criteria) (map[string]analytics.BoxStats, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.WeatherDistribution(days), nil
}

// TemperatureScatter returns the temperature versus count points.
func (s *DashboardService) TemperatureScatter(ctx context.Context, c filter.Criteria) ([]analytics.ScatterPoint, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.TemperatureScatter(days), nil
}

// Correlation returns the Pearson correlation matrix of the numeric daily
// fields.
func (s *DashboardService) Correlation(ctx context.Context, c filter.Criteria) (analytics.Correlation, error) {
	days, err := s.days(ctx, c)
	if err != nil {
		return analytics.Correlation{}, err
	}
	return analytics.Correlate(days), nil
}

// HourlyAverages returns mean rentals per hour of day.
func (s *DashboardService) HourlyAverages(ctx context.Context, c filter.Criteria) (map[int]analytics.HourAverages, error) {
	hours, err := s.hours(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.HourlyAverages(hours), nil
}

// HourWeekdayPivot returns mean counts per (hour, weekday) cell.
func (s *DashboardService) HourWeekdayPivot(ctx context.Context, c filter.Criteria) (map[int]map[string]float64, error) {
	hours, err := s.hours(ctx, c)
	if err != nil {
		return nil, err
	}
	return analytics.HourWeekdayPivot(hours), nil
}

// FilterOptions returns the selectable filter values of the loaded data,
// from the unfiltered daily table.
func (s *DashboardService) FilterOptions(ctx context.Context) (analytics.Options, error) {
	day, _, err := s.store.Load(ctx)
	if err != nil {
		return analytics.Options{}, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	return analytics.FilterOptions(day), nil
}

// Ready reports whether the dataset loaded successfully.
func (s *DashboardService) Ready(ctx context.Context) error {
	if _, _, err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	return nil
}

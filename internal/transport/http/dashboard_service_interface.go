package http

import (
	"context"

	"bikepulse/internal/analytics"
	"bikepulse/internal/filter"
)

// DashboardServiceInterface defines the dashboard operations the handler
// depends on. Satisfied by services.DashboardService; tests substitute a
// mock.
type DashboardServiceInterface interface {
	Summary(ctx context.Context, c filter.Criteria) (analytics.Summary, error)
	DailySeries(ctx context.Context, c filter.Criteria, preset string) ([]analytics.SeriesPoint, error)
	WeeklyPattern(ctx context.Context, c filter.Criteria) (map[string]analytics.UserAverages, error)
	WorkingDayPattern(ctx context.Context, c filter.Criteria) (analytics.WorkingDayView, error)
	WeatherDistribution(ctx context.Context, c filter.Criteria) (map[string]analytics.BoxStats, error)
	TemperatureScatter(ctx context.Context, c filter.Criteria) ([]analytics.ScatterPoint, error)
	Correlation(ctx context.Context, c filter.Criteria) (analytics.Correlation, error)
	HourlyAverages(ctx context.Context, c filter.Criteria) (map[int]analytics.HourAverages, error)
	HourWeekdayPivot(ctx context.Context, c filter.Criteria) (map[int]map[string]float64, error)
	FilterOptions(ctx context.Context) (analytics.Options, error)
	Ready(ctx context.Context) error
}

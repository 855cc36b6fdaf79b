package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"bikepulse/internal/dataset"
	apierrors "bikepulse/internal/errors"
	"bikepulse/internal/filter"
	"bikepulse/internal/services"
)

// DashboardHandler serves the dashboard views over HTTP.
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/summary", h.GetSummary)
	r.Get("/daily-series", h.GetDailySeries)
	r.Get("/weekly-pattern", h.GetWeeklyPattern)
	r.Get("/workingday-pattern", h.GetWorkingDayPattern)
	r.Get("/weather-distribution", h.GetWeatherDistribution)
	r.Get("/temperature-scatter", h.GetTemperatureScatter)
	r.Get("/correlation", h.GetCorrelation)
	r.Get("/hourly-averages", h.GetHourlyAverages)
	r.Get("/hour-weekday-heatmap", h.GetHourWeekdayPivot)
	r.Get("/filters", h.GetFilterOptions)

	return r
}

// filterQuery holds the raw filter parameters before conversion. The label
// lists are closed sets, so validation happens against the literal labels
// the loader produces.
type filterQuery struct {
	Year    string   `validate:"omitempty,number"`
	Season  []string `validate:"omitempty,dive,oneof=Winter Spring Summer Fall Unknown"`
	Weather []string `validate:"omitempty,dive,oneof=Clear Mist 'Light Rain/Snow' 'Heavy Rain/Snow' Unknown"`
	From    string   `validate:"omitempty,datetime=2006-01-02"`
	To      string   `validate:"omitempty,datetime=2006-01-02"`
	Range   string   `validate:"omitempty,oneof=1w 1m 3m 6m 1y all"`
}

// parseCriteria decodes and validates the shared filter query parameters.
// An inverted date range is valid input: it simply matches nothing.
func (h *DashboardHandler) parseCriteria(values url.Values) (filter.Criteria, string, *apierrors.APIError) {
	q := filterQuery{
		Year:    values.Get("year"),
		Season:  values["season"],
		Weather: values["weather"],
		From:    values.Get("from"),
		To:      values.Get("to"),
		Range:   values.Get("range"),
	}

	if err := h.validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apierrors.ValidationError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apierrors.ValidationError{
					Field:   fe.Field(),
					Message: "failed " + fe.Tag() + " validation",
				})
			}
			return filter.Criteria{}, "", apierrors.NewValidationErrors(fields)
		}
		return filter.Criteria{}, "", apierrors.ErrInvalidRequest
	}

	var c filter.Criteria
	if q.Year != "" {
		year, err := strconv.Atoi(q.Year)
		if err != nil {
			return filter.Criteria{}, "", apierrors.ErrValidation("year", "must be an integer year")
		}
		c.Year = year
	}
	c.Seasons = q.Season
	c.Weather = q.Weather
	if q.From != "" {
		c.From, _ = time.Parse(dataset.DateLayout, q.From)
	}
	if q.To != "" {
		c.To, _ = time.Parse(dataset.DateLayout, q.To)
	}
	return c, q.Range, nil
}

// handle runs the common decode-call-render cycle for criteria-driven
// endpoints.
func (h *DashboardHandler) handle(w http.ResponseWriter, r *http.Request, view func(filter.Criteria) (any, error)) {
	c, _, apiErr := h.parseCriteria(r.URL.Query())
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	result, err := view(c)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, result)
}

// handleServiceError maps service errors to API errors.
func (h *DashboardHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrDatasetUnavailable):
		h.errorHandler.HandleError(w, r, apierrors.DatasetLoadError(err))
	case errors.Is(err, services.ErrUnknownPreset):
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("range", "unknown range preset"))
	default:
		h.errorHandler.HandleError(w, r, err)
	}
}

// GetSummary handles GET /api/dashboard/summary.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.Summary(r.Context(), c)
	})
}

// GetDailySeries handles GET /api/dashboard/daily-series. The optional
// range parameter narrows the series to a preset window ending at the last
// filtered date.
func (h *DashboardHandler) GetDailySeries(w http.ResponseWriter, r *http.Request) {
	c, preset, apiErr := h.parseCriteria(r.URL.Query())
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	points, err := h.service.DailySeries(r.Context(), c, preset)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, points)
}

// GetWeeklyPattern handles GET /api/dashboard/weekly-pattern.
func (h *DashboardHandler) GetWeeklyPattern(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.WeeklyPattern(r.Context(), c)
	})
}

// GetWorkingDayPattern handles GET /api/dashboard/workingday-pattern.
func (h *DashboardHandler) GetWorkingDayPattern(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.WorkingDayPattern(r.Context(), c)
	})
}

// GetWeatherDistribution handles GET /api/dashboard/weather-distribution.
func (h *DashboardHandler) GetWeatherDistribution(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.WeatherDistribution(r.Context(), c)
	})
}

// GetTemperatureScatter handles GET /api/dashboard/temperature-scatter.
func (h *DashboardHandler) GetTemperatureScatter(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.TemperatureScatter(r.Context(), c)
	})
}

// GetCorrelation handles GET /api/dashboard/correlation.
func (h *DashboardHandler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.Correlation(r.Context(), c)
	})
}

// GetHourlyAverages handles GET /api/dashboard/hourly-averages.
func (h *DashboardHandler) GetHourlyAverages(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.HourlyAverages(r.Context(), c)
	})
}

// GetHourWeekdayPivot handles GET /api/dashboard/hour-weekday-heatmap.
func (h *DashboardHandler) GetHourWeekdayPivot(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, func(c filter.Criteria) (any, error) {
		return h.service.HourWeekdayPivot(r.Context(), c)
	})
}

// GetFilterOptions handles GET /api/dashboard/filters, returning the
// selectable filter values of the loaded data.
func (h *DashboardHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, opts)
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bikepulse/internal/config"
	"bikepulse/internal/dataset"
	apierrors "bikepulse/internal/errors"
	"bikepulse/internal/infrastructure"
	custommw "bikepulse/internal/middleware"
	"bikepulse/internal/services"
	handlers "bikepulse/internal/transport/http"
	"bikepulse/internal/validation"
)

const (
	// Version is the application version reported by the health endpoint.
	Version = "1.0.0"
	AppName = "BikePulse"
)

// Application represents the main application container.
type Application struct {
	Config           *config.Config
	Router           *chi.Mux
	Server           *http.Server
	Logger           *slog.Logger
	Store            *dataset.Store
	DashboardService *services.DashboardService
	Telemetry        *infrastructure.Telemetry
	HTTPMetrics      *infrastructure.HTTPMetrics
}

// NewApplication creates a new application instance with all dependencies
// wired together.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.EnsureLogDir(); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", Version),
		slog.String("day_file", cfg.Dataset.DayFile),
		slog.String("hour_file", cfg.Dataset.HourFile))

	telemetry, err := infrastructure.InitTelemetry(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	httpMetrics, err := infrastructure.NewHTTPMetrics(telemetry.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP metrics: %w", err)
	}

	app := &Application{
		Config:      cfg,
		Logger:      logger,
		Telemetry:   telemetry,
		HTTPMetrics: httpMetrics,
	}

	if err := app.initializeServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices creates the dataset store and the dashboard service.
// Both source tables load eagerly so startup fails fast on a broken dataset.
func (a *Application) initializeServices() error {
	validator := validation.NewFileValidator(a.Logger)
	if err := validator.ValidateDatasetFiles(a.Config.Dataset.DayFile, a.Config.Dataset.HourFile); err != nil {
		return fmt.Errorf("dataset validation failed: %w", err)
	}

	a.Store = dataset.NewStore(a.Config.Dataset.DayFile, a.Config.Dataset.HourFile, a.Logger)

	day, hour, err := a.Store.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	a.Logger.Info("Dataset loaded",
		slog.Int("day_rows", len(day)),
		slog.Int("hour_rows", len(hour)))

	a.DashboardService = services.NewDashboardService(a.Store, a.Logger)
	return nil
}

// setupRouter configures the HTTP router with all routes and middleware.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommw.Metrics(a.HTTPMetrics))
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(middleware.Timeout(a.Config.Server.ReadTimeout))

	if a.Config.Limits.Enabled {
		r.Use(custommw.NewRateLimiter(
			a.Config.Limits.RPS,
			a.Config.Limits.Burst,
			a.Logger,
		).Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	dashboardHandler := handlers.NewDashboardHandler(a.DashboardService, a.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(a.DashboardService, a.Logger, Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/dashboard", dashboardHandler.Routes())
	})

	r.Get("/healthz", healthHandler.HealthCheck)
	r.Get("/readyz", healthHandler.ReadinessCheck)

	if a.Telemetry.PrometheusHTTP != nil {
		metricsHandler := handlers.NewMetricsHandler(a.Telemetry.PrometheusHTTP)
		r.Get("/metrics", metricsHandler.Metrics)
	}

	a.Router = r
}

// createServer creates the HTTP server from the configuration.
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         a.Config.ListenAddr(),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the application and blocks until an interrupt signal arrives,
// then shuts down gracefully.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		a.Logger.InfoContext(ctx, "Server listening",
			slog.String("address", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		a.Logger.InfoContext(ctx, "Received shutdown signal",
			slog.String("signal", sig.String()))
	}

	return a.Stop(ctx)
}

// Stop shuts the application down gracefully within the configured timeout.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if a.Telemetry != nil {
		if err := a.Telemetry.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down telemetry",
				slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

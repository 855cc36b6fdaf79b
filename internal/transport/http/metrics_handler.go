package http

import (
	"net/http"
)

// MetricsHandler exposes the Prometheus scrape endpoint backed by the
// OpenTelemetry exporter.
type MetricsHandler struct {
	scrape http.Handler
}

// NewMetricsHandler creates a new metrics handler around the exporter's
// HTTP handler.
func NewMetricsHandler(scrape http.Handler) *MetricsHandler {
	return &MetricsHandler{scrape: scrape}
}

// Metrics handles GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	h.scrape.ServeHTTP(w, r)
}

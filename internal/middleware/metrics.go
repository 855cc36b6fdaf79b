package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"bikepulse/internal/infrastructure"
)

// Metrics records per-request OpenTelemetry instruments: a request counter,
// a duration histogram and an in-flight gauge, labeled by method, path and
// status code.
func Metrics(m *infrastructure.HTTPMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			m.ActiveRequests.Add(ctx, 1)
			defer m.ActiveRequests.Add(ctx, -1)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("path", r.URL.Path),
				attribute.Int("status_code", ww.Status()),
			)
			m.RequestsTotal.Add(ctx, 1, attrs)
			m.RequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		})
	}
}

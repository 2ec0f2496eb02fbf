package httputil

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/badjuice/storefront/pkg/logger"
)

// LoggingMiddleware logs HTTP requests with structured logging and tags
// each request with a generated request id
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		sw := NewStatusWriter(w)
		sw.Header().Set("X-Request-ID", requestID)

		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		traceID := "no-trace"
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		}

		logger.Info(ctx).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("request_id", requestID).
			Str("trace_id", traceID).
			Msg("HTTP request started")

		next.ServeHTTP(sw, r)

		duration := time.Since(start)

		logEvent := logger.WithContext(ctx).Info()
		if sw.StatusCode() >= 400 {
			logEvent = logger.WithContext(ctx).Error()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.StatusCode()).
			Dur("duration", duration).
			Str("request_id", requestID).
			Str("trace_id", traceID).
			Msg("HTTP request completed")
	})
}

// internal/api/middleware.go
package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/common/observability"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags each request with a generated ID, logs its outcome, and
// records duration metrics. obs may be nil (tests).
func RequestLogger(log logger.Logger, obs *observability.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Request-Id", requestID)
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			metrics.RequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration.Seconds())
			if obs != nil {
				obs.RecordRequest(r.Context(), r.URL.Path, rec.status)
				obs.RecordRequestDuration(r.Context(), duration, r.URL.Path)
			}

			log.Info("request handled", map[string]interface{}{
				"requestId":   requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": duration.Milliseconds(),
			})
		})
	}
}

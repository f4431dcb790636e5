package middleware

import (
	"net/http"
	"strconv"
	"time"

	"qsplan-backend/internal/metrics"

	"github.com/sirupsen/logrus"
)

// PDF export renders whole checklists, so anything past this is worth a look.
const slowRequestThreshold = 2 * time.Second

// MetricsMiddleware records request counts and latencies, and flags
// requests that exceed slowRequestThreshold.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: 200}

		next.ServeHTTP(wrapped, r)

		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method,
			r.URL.Path,
			strconv.Itoa(wrapped.statusCode),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method,
			r.URL.Path,
		).Observe(elapsed.Seconds())

		if elapsed > slowRequestThreshold {
			logrus.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": elapsed.String(),
			}).Warn("slow request")
		}
	})
}

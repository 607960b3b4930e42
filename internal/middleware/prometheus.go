package middleware

import (
	"net/http"
	"time"

	"github.com/rkondo/realrent/internal/metrics"
)

// Prometheus records per-request duration and count. Scrapes of /metrics
// itself are not recorded.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		if r.URL.Path == "/metrics" {
			return
		}
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		metrics.RecordRequest(r.Method, path, rec.status, time.Since(start).Seconds())
	})
}

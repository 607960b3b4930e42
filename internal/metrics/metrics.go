package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// NotebookRunsRunning is the number of notebook executions currently in flight.
	NotebookRunsRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notebook_runs_running",
			Help: "Number of notebook executions currently running",
		},
	)

	// NotebookRunsTotal counts finished notebook executions by status (ok, error).
	NotebookRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notebook_runs_total",
			Help: "Total number of notebook executions finished by status",
		},
		[]string{"status"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, NotebookRunsRunning, NotebookRunsTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /api/properties/123 -> /api/properties/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncNotebookRunsRunning increments the in-flight gauge (call when a run starts).
func IncNotebookRunsRunning() {
	NotebookRunsRunning.Inc()
}

// DecNotebookRunsRunning decrements the in-flight gauge (call when a run finishes).
func DecNotebookRunsRunning() {
	NotebookRunsRunning.Dec()
}

// IncNotebookRunsTotal increments the finished-runs counter for the given status (ok, error).
func IncNotebookRunsTotal(status string) {
	NotebookRunsTotal.WithLabelValues(status).Inc()
}

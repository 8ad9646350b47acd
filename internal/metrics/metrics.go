// Package metrics provides Prometheus metrics for the HTTP surface.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// httpRequestsTotal records the total number of handled HTTP requests.
	// Labels:
	//   - method: HTTP method
	//   - path: matched route template (not the raw URL)
	//   - status: response status code
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration records request handling latency.
	// Buckets cover fast CRUD responses up to slow store round trips.
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
}

// RecordRequest records one handled request.
func RecordRequest(method, path, status string) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// ObserveDuration records the handling duration of one request.
func ObserveDuration(method, path string, seconds float64) {
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

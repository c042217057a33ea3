package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// StatusNetworkError labels requests that never received an HTTP status
const StatusNetworkError = 0

// APIMetricsCollector handles all API request metrics
type APIMetricsCollector struct {
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
}

// NewAPIMetricsCollector creates a new API metrics collector
func NewAPIMetricsCollector(namespace string) *APIMetricsCollector {
	return &APIMetricsCollector{
		// Total API requests by method, endpoint, and status code
		apiRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_requests_total",
				Help:      "Total number of Traikoa API requests by method, endpoint, and status code",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		// API request duration histogram
		apiRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_request_duration_seconds",
				Help:      "Traikoa API request duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"method", "endpoint"},
		),
	}
}

// Register registers all API metrics with the given registry
func (c *APIMetricsCollector) Register(registerer prometheus.Registerer) error {
	return registerAll(registerer, c.apiRequestsTotal, c.apiRequestDuration)
}

// RecordAPIRequest records an API request completion.
// endpoint is the route template (e.g. "systems/{id}"), never the concrete path.
func (c *APIMetricsCollector) RecordAPIRequest(
	method string,
	endpoint string,
	statusCode int,
	duration float64,
) {
	c.apiRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	c.apiRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

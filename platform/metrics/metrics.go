// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests and content-source fetches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "polytechub"

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Content source metrics - track upstream CMS round trips
	CMSFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cms",
			Name:      "fetches_total",
			Help:      "Total number of CMS fetches by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)

	CMSFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cms",
			Name:      "fetch_duration_seconds",
			Help:      "CMS fetch duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	// Contact relay metrics
	ContactRelaysTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "relays_total",
			Help:      "Total number of contact form relays by result",
		},
		[]string{"result"},
	)
)

// ObserveCMSFetch records one CMS round trip.
func ObserveCMSFetch(endpoint string, seconds float64, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CMSFetchesTotal.WithLabelValues(endpoint, result).Inc()
	CMSFetchDuration.WithLabelValues(endpoint).Observe(seconds)
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	requestDurationBucketStart  = 0.005
	requestDurationBucketFactor = 2.0
	requestDurationBucketCount  = 12
)

const (
	searchMatchesBucketStart  = 1.0
	searchMatchesBucketFactor = 4.0
	searchMatchesBucketCount  = 8
)

var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Number of HTTP requests handled",
	},
	[]string{"method", "route", "status"},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "http_request_duration_seconds",
		Help: "Time taken to serve an HTTP request",
		Buckets: prometheus.ExponentialBuckets(
			requestDurationBucketStart,
			requestDurationBucketFactor,
			requestDurationBucketCount,
		),
	},
	[]string{"method", "route"},
)

var AdvocateSearchMatches = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "advocate_search_matches",
		Help: "Number of advocates matching a search across all pages",
		Buckets: prometheus.ExponentialBuckets(
			searchMatchesBucketStart,
			searchMatchesBucketFactor,
			searchMatchesBucketCount,
		),
	},
)

var CircuitBreakerState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "circuit_breaker_state",
		Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
	},
	[]string{"name"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AdvocateSearchMatches)
	prometheus.MustRegister(CircuitBreakerState)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

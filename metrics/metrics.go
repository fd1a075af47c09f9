package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Generation call outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeCacheHit       = "cache_hit"
	OutcomeRemoteError    = "remote_error"
	OutcomeTransportError = "transport_error"
	OutcomeTimeout        = "timeout"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlgen_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	generationCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_generation_calls_total",
			Help: "Calls to the remote generation service by outcome.",
		},
		[]string{"outcome"},
	)

	generationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sqlgen_generation_duration_seconds",
			Help:    "Latency of remote generation calls.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)

	outputFilesWrittenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlgen_output_files_written_total",
			Help: "Files written to the output directory by kind.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDurationSeconds,
		generationCallsTotal,
		generationDurationSeconds,
		outputFilesWrittenTotal,
	)
}

func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, path, status).Observe(elapsed.Seconds())
}

func ObserveGeneration(outcome string, elapsed time.Duration) {
	generationCallsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeCacheHit {
		generationDurationSeconds.Observe(elapsed.Seconds())
	}
}

func IncOutputFile(kind string) {
	outputFilesWrittenTotal.WithLabelValues(kind).Inc()
}

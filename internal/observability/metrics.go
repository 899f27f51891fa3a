// Package observability registers and records the service's Prometheus
// metrics.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	meshOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mesh_ops_total",
			Help: "Mesh code operations by kind, level and outcome.",
		},
		[]string{"op", "level", "outcome"},
	)

	cacheOpsSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of cache backend operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "outcome"},
	)

	cacheResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "Cache lookups by tier and outcome.",
		},
		[]string{"tier", "outcome"},
	)

	tallyEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tally_events_total",
			Help: "Observation events consumed from Kafka, by result.",
		},
		[]string{"result"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func IncMeshOp(op string, level int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	meshOpsTotal.WithLabelValues(op, strconv.Itoa(level), outcome).Inc()
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	cacheOpsSeconds.WithLabelValues(op, outcome).Observe(durationSeconds)
}

func IncCacheHit(tier string)  { cacheResultsTotal.WithLabelValues(tier, "hit").Inc() }
func IncCacheMiss(tier string) { cacheResultsTotal.WithLabelValues(tier, "miss").Inc() }

func IncTallyEvent(result string) { tallyEventsTotal.WithLabelValues(result).Inc() }

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}

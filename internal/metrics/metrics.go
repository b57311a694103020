// Package metrics defines Prometheus metrics for gridpath.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	// SolvesTotal counts solver runs by outcome: "solved", a failure kind,
	// "invalid" or "error".
	SolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_solves_total",
			Help: "Total path solves by outcome",
		},
		[]string{"outcome"},
	)

	SolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_solve_duration_seconds",
			Help:    "Time spent building, traversing and reconstructing one grid",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)

	PathHops = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_path_hops",
			Help:    "Hop count of solved paths",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		},
	)

	VisitedCells = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_visited_cells",
			Help:    "Cells reached by each traversal",
			Buckets: prometheus.ExponentialBuckets(1, 4, 11),
		},
	)

	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_batch_size",
			Help:    "Requests per batch call",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SolvesTotal, SolveDuration, PathHops, VisitedCells, BatchSize,
	)
}

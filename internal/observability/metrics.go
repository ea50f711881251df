package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	apiRequestsTotal    *prometheus.CounterVec
	apiLatencySeconds   *prometheus.HistogramVec
	syncRunsTotal       *prometheus.CounterVec
	syncDurationSeconds *prometheus.HistogramVec
	syncSubmissions     *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors for the API surface
// and the sync pipeline.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leetsync_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leetsync_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		syncRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leetsync_sync_runs_total",
			Help: "Total number of sync runs, labelled by outcome.",
		}, []string{"outcome"})

		syncDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leetsync_sync_duration_seconds",
			Help:    "Latency distribution for full sync runs.",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		}, []string{"outcome"})

		syncSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leetsync_sync_submissions_total",
			Help: "Submissions seen by the reconciliation engine, labelled by disposition.",
		}, []string{"disposition"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, syncRunsTotal, syncDurationSeconds, syncSubmissions)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// SyncRuns exposes the counter for sync runs.
func SyncRuns() *prometheus.CounterVec {
	RegisterMetrics()
	return syncRunsTotal
}

// SyncDuration exposes the latency histogram for sync runs.
func SyncDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return syncDurationSeconds
}

// SyncSubmissions exposes the counter for reconciled submissions.
func SyncSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return syncSubmissions
}

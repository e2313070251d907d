// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	SubmissionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_processed_total",
			Help: "Form submissions processed by outcome (valid, missing_fields, invalid_values, no_matches, error)",
		},
		[]string{"outcome"},
	)

	BlindspotsIdentified = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blindspots_identified_per_submission",
			Help:    "Number of blindspots identified per submission",
			Buckets: []float64{3, 4, 5},
		},
	)

	MatchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matches_returned_per_submission",
			Help:    "Number of opportunity matches returned per submission",
			Buckets: []float64{0, 1, 2, 3},
		},
	)
)

package telemetry

import "github.com/prometheus/client_golang/prometheus"

var SchedulerRunsStartedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "reserveroster",
		Subsystem: "scheduler",
		Name:      "runs_started_total",
		Help:      "Total number of evolutionary scheduler runs started.",
	},
)

var SchedulerRunsFinishedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "reserveroster",
		Subsystem: "scheduler",
		Name:      "runs_finished_total",
		Help:      "Total number of scheduler runs finished, by outcome.",
	},
	[]string{"status"},
)

var SchedulerGenerationsProcessedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "reserveroster",
		Subsystem: "scheduler",
		Name:      "generations_processed_total",
		Help:      "Total number of generations processed across all runs.",
	},
)

var SchedulerBestScore = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "reserveroster",
		Subsystem: "scheduler",
		Name:      "best_score",
		Help:      "Best total score of the most recently completed run.",
	},
)

var SchedulerRunDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "reserveroster",
		Subsystem: "scheduler",
		Name:      "run_duration_seconds",
		Help:      "Scheduler run wall-clock duration in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
	},
	[]string{"status"},
)

var AvailabilityCoverageRatio = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "reserveroster",
		Subsystem: "availability",
		Name:      "coverage_ratio",
		Help:      "Coverage ratio of the most recently completed availability report.",
	},
)

var AvailabilityReportDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: "reserveroster",
		Subsystem: "availability",
		Name:      "report_duration_seconds",
		Help:      "Greedy availability analyzer run duration in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
	},
)

var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "reserveroster",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, by method, route, and status.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// All returns every reserveroster-specific metric for registration.
func All() []prometheus.Collector {
	return []prometheus.Collector{
		SchedulerRunsStartedTotal,
		SchedulerRunsFinishedTotal,
		SchedulerGenerationsProcessedTotal,
		SchedulerBestScore,
		SchedulerRunDuration,
		AvailabilityCoverageRatio,
		AvailabilityReportDuration,
		HTTPRequestDuration,
	}
}

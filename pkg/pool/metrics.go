package pool

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus collectors for a pool. A nil *Metrics in the
// pool Config disables instrumentation.
type Metrics struct {
	JobsSubmitted prometheus.Counter
	JobsCompleted prometheus.Counter
	JobsFailed    prometheus.Counter
	BusyWorkers   prometheus.Gauge
	LiveWorkers   prometheus.Gauge
	JobDuration   prometheus.Histogram
}

// NewMetrics creates pool metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer for the default registry or a private
// registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		JobsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hellopool",
			Name:      "jobs_submitted_total",
			Help:      "Total number of jobs accepted by the pool",
		}),
		JobsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hellopool",
			Name:      "jobs_completed_total",
			Help:      "Total number of jobs that ran to completion",
		}),
		JobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hellopool",
			Name:      "jobs_failed_total",
			Help:      "Total number of jobs that panicked",
		}),
		BusyWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hellopool",
			Name:      "busy_workers",
			Help:      "Number of workers currently running a job",
		}),
		LiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hellopool",
			Name:      "live_workers",
			Help:      "Number of workers that have not terminated",
		}),
		JobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hellopool",
			Name:      "job_duration_seconds",
			Help:      "Histogram of job execution time",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.JobsSubmitted,
		m.JobsCompleted,
		m.JobsFailed,
		m.BusyWorkers,
		m.LiveWorkers,
		m.JobDuration,
	)
	return m
}

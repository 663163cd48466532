// Package metrics exposes Prometheus collectors for the dispatcher, agent
// runners, stall sweeps, and the distributed lock: one process-wide
// prometheus.Registry, package-level CounterVec/HistogramVec/GaugeVec
// variables registered from an init(), and a Handler() exposing them via
// promhttp.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the application-specific Prometheus collectors.
var Registry = prometheus.NewRegistry()

var (
	jobsEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "dispatch",
			Name:      "jobs_enqueued_total",
			Help:      "Total number of jobs enqueued, by queue and job name.",
		},
		[]string{"queue", "name"},
	)

	jobsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "dispatch",
			Name:      "jobs_completed_total",
			Help:      "Total number of jobs that completed successfully, by queue and job name.",
		},
		[]string{"queue", "name"},
	)

	jobsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "dispatch",
			Name:      "jobs_failed_total",
			Help:      "Total number of jobs that exhausted their retries, by queue and job name.",
		},
		[]string{"queue", "name"},
	)

	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kanbanengine",
			Subsystem: "dispatch",
			Name:      "job_duration_seconds",
			Help:      "Time spent executing a claimed job's Handler, by queue and job name.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
		[]string{"queue", "name"},
	)

	agentRunnerOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "agentrunner",
			Name:      "outcomes_total",
			Help:      "Total AgentRunner invocations, by role and outcome (spawned|lock_held|failed).",
		},
		[]string{"role", "outcome"},
	)

	stallSweepActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "stall",
			Name:      "sweep_actions_total",
			Help:      "Total corrective actions taken by the stall sweep, by tier.",
		},
		[]string{"tier"},
	)

	stallSweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kanbanengine",
			Subsystem: "stall",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of one full stall-sweep pass.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	activeLocks = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kanbanengine",
			Subsystem: "lock",
			Name:      "active_total",
			Help:      "Current number of held single-flight issue/role locks, as last observed.",
		},
	)

	lockContention = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kanbanengine",
			Subsystem: "lock",
			Name:      "contention_total",
			Help:      "Total TryAcquire calls that found the lock already held.",
		},
		[]string{"issue_role"},
	)
)

func init() {
	Registry.MustRegister(
		jobsEnqueued,
		jobsCompleted,
		jobsFailed,
		jobDuration,
		agentRunnerOutcomes,
		stallSweepActions,
		stallSweepDuration,
		activeLocks,
		lockContention,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus
// metrics, mounted at GET /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordJobEnqueued increments the enqueue counter for queue/name.
func RecordJobEnqueued(queue, name string) {
	jobsEnqueued.WithLabelValues(queue, name).Inc()
}

// RecordJobCompleted increments the completion counter and observes the
// job's execution duration in seconds.
func RecordJobCompleted(queue, name string, durationSeconds float64) {
	jobsCompleted.WithLabelValues(queue, name).Inc()
	jobDuration.WithLabelValues(queue, name).Observe(durationSeconds)
}

// RecordJobFailed increments the failure counter for a job that exhausted
// its retries.
func RecordJobFailed(queue, name string) {
	jobsFailed.WithLabelValues(queue, name).Inc()
}

// RecordAgentRunnerOutcome increments the outcome counter for an
// AgentRunner.Run call. outcome should be one of "spawned", "lock_held",
// or "failed".
func RecordAgentRunnerOutcome(role, outcome string) {
	agentRunnerOutcomes.WithLabelValues(role, outcome).Inc()
}

// RecordStallSweepAction increments the per-tier corrective-action counter.
func RecordStallSweepAction(tier string) {
	stallSweepActions.WithLabelValues(tier).Inc()
}

// RecordStallSweepDuration observes one full sweep pass's duration in
// seconds.
func RecordStallSweepDuration(durationSeconds float64) {
	stallSweepDuration.Observe(durationSeconds)
}

// SetActiveLocks records the last-observed count of held locks.
func SetActiveLocks(count float64) {
	activeLocks.Set(count)
}

// RecordLockContention increments the contention counter for a
// (issue_id, role) key that was already held at TryAcquire time.
func RecordLockContention(issueRoleKey string) {
	lockContention.WithLabelValues(issueRoleKey).Inc()
}

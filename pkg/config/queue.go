package config

import "time"

// QueueConfig contains Dispatcher/worker-pool configuration.
// These values control how jobs are polled, claimed, retried, and run.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per queue, per replica.
	// Each worker independently polls and processes jobs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of concurrently-running jobs per
	// queue, across ALL replicas/pods. Enforced by a database COUNT(*) check.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the maximum time a single job may run before its
	// context is cancelled (the runner's work is cheap and should finish
	// well under this).
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// MaxRetries is the bounded retry count for jobs that fail with a
	// TransientError. The Dispatcher does not read it: each job is bounded
	// by its own max_attempts column, whose schema default is 3.
	MaxRetries int `yaml:"max_retries"`

	// RetryBaseDelay is the base of the exponential backoff applied between
	// retries: delay = RetryBaseDelay * 2^attempt.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay"`
}

// DefaultQueueConfig returns the built-in Dispatcher defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       20,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              2 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		MaxRetries:              3,
		RetryBaseDelay:          5 * time.Second,
	}
}

// QueueName identifies one of the Dispatcher's named queues.
type QueueName string

// The two named Dispatcher queues.
const (
	QueueAgent   QueueName = "agent"   // lightweight PM replies
	QueueBackend QueueName = "backend" // dev/qa/tech_lead spawns, throughput-bound
)

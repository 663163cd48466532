// Package dispatch provides named-queue, at-least-once job dispatch backed
// by Postgres SELECT ... FOR UPDATE SKIP LOCKED claiming.
package dispatch

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for dispatch operations.
var (
	// ErrNoJobsAvailable indicates no claimable job is in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Job is the claimed unit of work handed to a Handler.
type Job struct {
	ID       string
	Queue    string
	Name     string
	Args     map[string]interface{}
	Attempts int
}

// Handler processes one claimed Job. A returned error causes the job to be
// retried (bounded by the job's max_attempts) with exponential backoff; nil marks it
// completed.
type Handler interface {
	Handle(ctx context.Context, job *Job) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(ctx context.Context, job *Job) error

// Handle calls f(ctx, job).
func (f HandlerFunc) Handle(ctx context.Context, job *Job) error {
	return f(ctx, job)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	Queue          string    `json:"queue"`
	CurrentJobID   string    `json:"current_job_id,omitempty"`
	JobsProcessed  int       `json:"jobs_processed"`
	LastActivity   time.Time `json:"last_activity"`
}

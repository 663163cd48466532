package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/job"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/metrics"
)

// agentQueueWorkers is fixed low: the agent queue only carries lightweight
// PM-reply jobs.
const agentQueueWorkers = 2

// WorkerPool manages the dispatch workers for both named queues.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	orphans orphanState
}

// NewWorkerPool creates a dispatch worker pool: agentQueueWorkers workers on
// the "agent" queue plus cfg.WorkerCount workers on the throughput-bound
// "backend" queue. handlers maps job name to Handler and is shared by every
// worker regardless of queue.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, handlers map[string]Handler) *WorkerPool {
	p := &WorkerPool{
		podID:   podID,
		client:  client,
		config:  cfg,
		workers: make([]*Worker, 0, cfg.WorkerCount+agentQueueWorkers),
		stopCh:  make(chan struct{}),
	}
	for i := 0; i < agentQueueWorkers; i++ {
		id := fmt.Sprintf("%s-agent-worker-%d", podID, i)
		p.workers = append(p.workers, NewWorker(id, podID, config.QueueAgent, client, cfg, handlers))
	}
	for i := 0; i < cfg.WorkerCount; i++ {
		id := fmt.Sprintf("%s-backend-worker-%d", podID, i)
		p.workers = append(p.workers, NewWorker(id, podID, config.QueueBackend, client, cfg, handlers))
	}
	return p
}

// Start spawns worker goroutines and the stale-lock recovery sweep.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("starting dispatch worker pool", "pod_id", p.podID, "workers", len(p.workers))
	for _, w := range p.workers {
		w.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current job before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("stopping dispatch worker pool gracefully")
	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("dispatch worker pool stopped")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, err := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Count(ctx)
	if err != nil {
		slog.Error("failed to query queue depth for health check", "pod_id", p.podID, "error", err)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, w := range p.workers {
		stats := w.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.orphans.mu.Lock()
	lastScan := p.orphans.lastScan
	recovered := p.orphans.recovered
	p.orphans.mu.Unlock()

	var dbError string
	dbHealthy := err == nil
	if !dbHealthy {
		dbError = fmt.Sprintf("queue depth query failed: %v", err)
	}

	return &PoolHealth{
		IsHealthy:        len(p.workers) > 0 && dbHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastScan,
		OrphansRecovered: recovered,
	}
}

// Dispatcher is the job-submission side of the named-queue system: used by
// HTTP handlers, the StallController, and AgentRunners to enqueue work.
type Dispatcher struct {
	client *ent.Client
}

// NewDispatcher wraps an ent client for job submission.
func NewDispatcher(client *ent.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// Enqueue submits a job for immediate (next-poll) execution.
func (d *Dispatcher) Enqueue(ctx context.Context, queue config.QueueName, name string, args map[string]interface{}) (string, error) {
	return d.EnqueueAt(ctx, queue, name, args, time.Now())
}

// EnqueueTx writes the job row through the caller's open transaction, so
// the job becomes claimable only once that transaction commits and never
// exists if it rolls back. This is what makes post-transition side effects
// a transactional outbox rather than a fire-and-forget submission.
func (d *Dispatcher) EnqueueTx(ctx context.Context, tx *ent.Tx, queue config.QueueName, name string, args map[string]interface{}) (string, error) {
	return createJob(ctx, tx.Job.Create(), queue, name, args, time.Now())
}

// EnqueueAt submits a job that may not be claimed before runAt; used by the
// StallController for delayed re-examination and by retry backoff.
func (d *Dispatcher) EnqueueAt(ctx context.Context, queue config.QueueName, name string, args map[string]interface{}, runAt time.Time) (string, error) {
	return createJob(ctx, d.client.Job.Create(), queue, name, args, runAt)
}

func createJob(ctx context.Context, create *ent.JobCreate, queue config.QueueName, name string, args map[string]interface{}, runAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := create.
		SetID(id).
		SetQueue(job.Queue(queue)).
		SetName(name).
		SetArgs(args).
		SetRunAt(runAt).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("enqueue job %q: %w", name, err)
	}
	metrics.RecordJobEnqueued(string(queue), name)
	return id, nil
}

// CleanupOldJobs deletes completed and failed jobs older than cutoff,
// invoked periodically by pkg/cleanup. Pending/in_progress jobs are never
// touched regardless of age.
func (d *Dispatcher) CleanupOldJobs(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := d.client.Job.Delete().
		Where(
			job.CreatedAtLT(cutoff),
			job.StatusIn(job.StatusCompleted, job.StatusFailed),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleaning up old jobs: %w", err)
	}
	return count, nil
}

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sethvargo/go-retry"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/job"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/metrics"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single dispatch worker polling one named queue.
type Worker struct {
	id       string
	podID    string
	queue    config.QueueName
	client   *ent.Client
	config   *config.QueueConfig
	handlers map[string]Handler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new dispatch worker bound to a single queue.
func NewWorker(id, podID string, queue config.QueueName, client *ent.Client, cfg *config.QueueConfig, handlers map[string]Handler) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queue,
		client:       client,
		config:       cfg,
		handlers:     handlers,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		Queue:         string(w.queue),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID, "queue", w.queue)
	log.Info("worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("worker shutting down")
			return
		case <-ctx.Done():
			log.Info("context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	activeCount, err := w.client.Job.Query().
		Where(
			job.QueueEQ(job.Queue(w.queue)),
			job.StatusEQ(job.StatusInProgress),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "job_name", claimed.Name, "worker_id", w.id)
	log.Info("job claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	handler, ok := w.handlers[claimed.Name]
	if !ok {
		log.Error("no handler registered for job name")
		return w.fail(context.Background(), claimed, fmt.Errorf("no handler registered for job %q", claimed.Name))
	}

	start := time.Now()
	runErr := handler.Handle(jobCtx, &Job{
		ID:       claimed.ID,
		Queue:    string(claimed.Queue),
		Name:     claimed.Name,
		Args:     claimed.Args,
		Attempts: claimed.Attempts,
	})
	elapsed := time.Since(start).Seconds()

	bgCtx := context.Background()
	if runErr != nil {
		log.Warn("job failed", "error", runErr, "attempts", claimed.Attempts)
		failErr := w.fail(bgCtx, claimed, runErr)
		if claimed.Attempts >= claimed.MaxAttempts {
			metrics.RecordJobFailed(string(w.queue), claimed.Name)
		}
		return failErr
	}

	if err := w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusCompleted).
		Exec(bgCtx); err != nil {
		log.Error("failed to mark job completed", "error", err)
		return err
	}
	metrics.RecordJobCompleted(string(w.queue), claimed.Name, elapsed)

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("job completed")
	return nil
}

// fail bumps a job's attempt count and either reschedules it with
// exponential backoff or marks it permanently failed once max_attempts is
// exhausted.
func (w *Worker) fail(ctx context.Context, claimed *ent.Job, cause error) error {
	if claimed.Attempts >= claimed.MaxAttempts {
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusFailed).
			SetLastError(cause.Error()).
			Exec(ctx)
	}

	backoff := retry.NewExponential(w.config.RetryBaseDelay)
	var delay time.Duration
	for i := 0; i < claimed.Attempts; i++ {
		delay, _ = backoff.Next()
	}

	return w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusPending).
		SetLastError(cause.Error()).
		SetRunAt(time.Now().Add(delay)).
		ClearLockedBy().
		ClearLockedAt().
		Exec(ctx)
}

// claimNextJob atomically claims the oldest claimable job on this worker's
// queue using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	candidate, err := tx.Job.Query().
		Where(
			job.QueueEQ(job.Queue(w.queue)),
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(now),
		).
		Order(ent.Asc(job.FieldRunAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	claimed, err := candidate.Update().
		SetStatus(job.StatusInProgress).
		SetAttempts(candidate.Attempts + 1).
		SetLockedBy(w.id).
		SetLockedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/job"
)

// orphanScanInterval governs how often the pool looks for jobs whose worker
// crashed mid-processing (locked_at stale, status stuck at in_progress).
const orphanScanInterval = 1 * time.Minute

// orphanState tracks orphan-recovery metrics (thread-safe).
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanDetection periodically scans for jobs stuck in_progress past
// JobTimeout and requeues or fails them. All pods run this independently;
// the operation is idempotent since SKIP LOCKED prevents double-claiming.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(orphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("orphan job detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress jobs whose lock is older than
// JobTimeout and requeues them (or marks them failed if attempts exhausted).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.JobTimeout)

	orphans, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.LockedAtNotNil(),
			job.LockedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, j := range orphans {
		if err := p.recoverOrphanJob(ctx, j); err != nil {
			slog.Error("failed to recover orphaned job", "job_id", j.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanJob requeues a stuck job for redelivery, or marks it
// permanently failed if its attempts are already exhausted.
func (p *WorkerPool) recoverOrphanJob(ctx context.Context, j *ent.Job) error {
	lockedBy := "unknown"
	if j.LockedBy != nil {
		lockedBy = *j.LockedBy
	}
	errMsg := fmt.Sprintf("orphaned: no completion from worker %s since lock acquired", lockedBy)

	if j.Attempts >= j.MaxAttempts {
		return p.client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusFailed).
			SetLastError(errMsg).
			Exec(ctx)
	}

	return p.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusPending).
		SetLastError(errMsg).
		SetRunAt(time.Now()).
		ClearLockedBy().
		ClearLockedAt().
		Exec(ctx)
}

package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent/job"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/dispatch"
	"github.com/ticketforge/kanbanengine/pkg/services"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func TestService_CleansUpOldCompletedJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetQueue("backend").
		SetName("run_dev_agent").
		SetStatus(job.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.DB().ExecContext(ctx, `UPDATE jobs SET created_at = $1 WHERE job_id = $2`,
		time.Now().Add(-60*24*time.Hour), old.ID)
	require.NoError(t, err)

	recent, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetQueue("backend").
		SetName("run_dev_agent").
		SetStatus(job.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	dispatcher := dispatch.NewDispatcher(client.Client)
	eventService := services.NewEventService(client.Client)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}

	svc := NewService(cfg, dispatcher, eventService)
	svc.runAll(ctx)

	_, err = client.Job.Get(ctx, old.ID)
	assert.Error(t, err, "old completed job should have been deleted")

	_, err = client.Job.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent job should survive cleanup")
}

func TestService_CleansUpOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	issueID := uuid.NewString()
	_, err := client.DB().ExecContext(ctx,
		`INSERT INTO events (event_id, issue_id, event_type, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), issueID, "issue_updated", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	recentEventID := uuid.NewString()
	_, err = client.DB().ExecContext(ctx,
		`INSERT INTO events (event_id, issue_id, event_type, created_at) VALUES ($1, $2, $3, $4)`,
		recentEventID, issueID, "issue_updated", time.Now())
	require.NoError(t, err)

	dispatcher := dispatch.NewDispatcher(client.Client)
	eventService := services.NewEventService(client.Client)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}

	svc := NewService(cfg, dispatcher, eventService)
	svc.runAll(ctx)

	evts, err := eventService.GetEventsSince(ctx, issueID, time.Now().Add(-24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, recentEventID, evts[0].ID)
}

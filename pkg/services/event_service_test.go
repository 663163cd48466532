package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/pkg/events"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Needs dev work", IssueType: "maintenance",
	})
	require.NoError(t, err)

	publisher := events.NewPublisher(client.DB())
	cursor := time.Now().Add(-time.Minute)

	require.NoError(t, publisher.PublishIssueUpdated(ctx, issue.ID, events.IssueUpdatedPayload{
		KanbanColumn: "triage",
		LegacyStatus: "open",
	}))

	svc := NewEventService(client.Client)
	evts, err := svc.GetEventsSince(ctx, issue.ID, cursor, 10)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, "issue_updated", string(evts[0].EventType))
}

func TestEventService_CleanupOrphanedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	issueID := uuid.NewString()

	_, err := client.DB().ExecContext(ctx,
		`INSERT INTO events (event_id, issue_id, event_type, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), issueID, "issue_updated", time.Now().Add(-3*time.Hour))
	require.NoError(t, err)

	svc := NewEventService(client.Client)
	count, err := svc.CleanupOrphanedEvents(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

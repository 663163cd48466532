package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/events"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

// fakeDispatcher records enqueued jobs without touching the database.
type fakeDispatcher struct {
	enqueued []string
}

func (f *fakeDispatcher) EnqueueTx(ctx context.Context, tx *ent.Tx, queue config.QueueName, name string, args map[string]interface{}) (string, error) {
	f.enqueued = append(f.enqueued, name)
	return "job-" + name, nil
}

// fakePublisher is a no-op statemachine.EventPublisher for tests that don't
// exercise Postgres NOTIFY.
type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishIssueUpdated(ctx context.Context, issueID string, payload events.IssueUpdatedPayload) error {
	f.published = append(f.published, issueID)
	return nil
}

func TestTransitionService_ApplyAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Homepage typo", IssueType: "maintenance",
	})
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	publisher := &fakePublisher{}
	transitions := NewTransitionService(client.Client, dispatcher, publisher)

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorPM, statemachine.ColumnReadyForUATApproval, "triaged")
	require.NoError(t, err)

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorCustomer, statemachine.ColumnTodo, "approved")
	require.NoError(t, err)
	assert.Contains(t, dispatcher.enqueued, "run_dev_agent")

	history, err := transitions.ListTransitions(ctx, issue.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "triage", string(history[0].FromColumn))
	assert.Equal(t, "ready_for_uat_approval", string(history[0].ToColumn))
}

func TestTransitionService_Apply_IdempotentCallbackIsSkipped(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Broken link", IssueType: "maintenance",
	})
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	publisher := &fakePublisher{}
	transitions := NewTransitionService(client.Client, dispatcher, publisher)

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorPM, statemachine.ColumnReadyForUATApproval, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorCustomer, statemachine.ColumnTodo, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnInProgress, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnReadyForQA, "")
	require.NoError(t, err)

	// A duplicate callback targeting a column already passed is a no-op,
	// not an error, and must not record a second transition row.
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnReadyForQA, "")
	var noop *statemachine.IdempotencyNoop
	require.ErrorAs(t, err, &noop)

	history, err := transitions.ListTransitions(ctx, issue.ID)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestTransitionService_Apply_ThirdDevFailEscalatesToTechLead(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Flaky checkout", IssueType: "maintenance",
	})
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	publisher := &fakePublisher{}
	transitions := NewTransitionService(client.Client, dispatcher, publisher)

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorPM, statemachine.ColumnReadyForUATApproval, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorCustomer, statemachine.ColumnTodo, "")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnInProgress, "")
		require.NoError(t, err)
		_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnReadyForQA, "")
		require.NoError(t, err)
		_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorQA, statemachine.ColumnInQA, "")
		require.NoError(t, err)
		_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorQA, statemachine.ColumnTodo, "qa fail")
		require.NoError(t, err)
	}
	dispatcher.enqueued = nil

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnInProgress, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnReadyForQA, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorQA, statemachine.ColumnInQA, "")
	require.NoError(t, err)
	result, err := transitions.Apply(ctx, issue.ID, statemachine.ActorQA, statemachine.ColumnTodo, "qa fail again")
	require.NoError(t, err)

	assert.Equal(t, 3, result.DevFailCount)
	assert.Contains(t, dispatcher.enqueued, "run_tech_lead")
	assert.NotContains(t, dispatcher.enqueued, "run_dev_agent")
}

func TestTransitionService_Apply_SystemRevertDoesNotEnqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Stuck in progress", IssueType: "maintenance",
	})
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	transitions := NewTransitionService(client.Client, dispatcher, &fakePublisher{})

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorPM, statemachine.ColumnReadyForUATApproval, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorCustomer, statemachine.ColumnTodo, "")
	require.NoError(t, err)
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorDev, statemachine.ColumnInProgress, "")
	require.NoError(t, err)
	dispatcher.enqueued = nil

	// A stall-recovery revert goes back to the pickup column without
	// enqueuing anything; re-dispatch belongs to the stall sweep.
	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorSystem, statemachine.ColumnTodo, "stalled, retrying")
	require.NoError(t, err)
	assert.Empty(t, dispatcher.enqueued)
}

func TestTransitionService_Apply_RejectsDisallowedActor(t *testing.T) {
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

	transitions := NewTransitionService(client.Client, &fakeDispatcher{}, &fakePublisher{})

	_, err = transitions.Apply(ctx, issue.ID, statemachine.ActorCustomer, statemachine.ColumnTodo, "")
	var conflict *statemachine.ConflictError
	require.ErrorAs(t, err, &conflict)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/pkg/events"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

type fakePMRunner struct {
	calls []string
	err   error
}

func (f *fakePMRunner) Run(ctx context.Context, issueID string) error {
	f.calls = append(f.calls, issueID)
	return f.err
}

func TestChatMessageService_PostCustomerMessage_RunsPMAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Checkout is broken", IssueType: "maintenance",
	})
	require.NoError(t, err)

	pm := &fakePMRunner{}
	publisher := events.NewPublisher(client.DB())
	chat := NewChatMessageService(client.Client, publisher, pm)

	msg, err := chat.PostCustomerMessage(ctx, issue.ID, "It's still broken after the last fix")
	require.NoError(t, err)
	assert.Equal(t, "customer", string(msg.Author))
	assert.Equal(t, []string{issue.ID}, pm.calls)

	messages, err := chat.ListMessages(ctx, issue.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)
}

func TestChatMessageService_PostCustomerMessage_RejectsEmptyBody(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	chat := NewChatMessageService(client.Client, publisher, &fakePMRunner{})

	_, err := chat.PostCustomerMessage(context.Background(), "issue-1", "")
	assert.True(t, IsValidationError(err))
}

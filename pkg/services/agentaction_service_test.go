package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent/agentaction"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func TestAgentActionService_ListAndCount(t *testing.T) {
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

	_, err = client.AgentAction.Create().
		SetID(uuid.NewString()).
		SetIssueID(issue.ID).
		SetRole(agentaction.RoleDevAgent).
		Save(ctx)
	require.NoError(t, err)

	actions := NewAgentActionService(client.Client)

	count, err := actions.CountActions(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	list, err := actions.ListActions(ctx, issue.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "started", string(list[0].Status))
}

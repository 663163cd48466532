package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func setupSiteForIssues(t *testing.T, ctx context.Context, customers *CustomerService, sites *SiteService) (customerID, siteID string) {
	t.Helper()
	cust, err := customers.CreateCustomer(ctx, "shop-owner@example.com")
	require.NoError(t, err)
	site, err := sites.CreateSite(ctx, cust.ID, "https://shop.example", "Shop")
	require.NoError(t, err)
	return cust.ID, site.ID
}

func TestIssueService_CreateIssue_AssignsMonotonicTicketNumbers(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)

	first, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Site is down", IssueType: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TicketNumber)
	assert.Equal(t, "triage", string(first.KanbanColumn))

	second, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Add contact form", IssueType: "site_build",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.TicketNumber)
}

func TestIssueService_GetIssue_ScopedToCustomer(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)
	issues := NewIssueService(client.Client, client.DB())

	customerID, siteID := setupSiteForIssues(t, ctx, customers, sites)
	issue, err := issues.CreateIssue(ctx, CreateIssueRequest{
		CustomerID: customerID, SiteID: siteID, Title: "Broken checkout", IssueType: "maintenance",
	})
	require.NoError(t, err)

	_, err = issues.GetIssue(ctx, "someone-elses-customer-id", issue.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := issues.GetIssue(ctx, customerID, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, issue.ID, found.ID)

	owns, err := issues.Owns(ctx, customerID, issue.ID)
	require.NoError(t, err)
	assert.True(t, owns)
}

func TestIssueService_CreateIssue_RequiresTitle(t *testing.T) {
	client := testdb.NewTestClient(t)
	issues := NewIssueService(client.Client, client.DB())

	_, err := issues.CreateIssue(context.Background(), CreateIssueRequest{
		CustomerID: "cust-1", SiteID: "site-1", IssueType: "maintenance",
	})
	assert.True(t, IsValidationError(err))
}

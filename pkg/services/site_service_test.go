package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func TestSiteService_CreateListAndOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	customers := NewCustomerService(client.Client)
	sites := NewSiteService(client.Client)

	alice, err := customers.CreateCustomer(ctx, "alice@example.com")
	require.NoError(t, err)
	bob, err := customers.CreateCustomer(ctx, "bob@example.com")
	require.NoError(t, err)

	site, err := sites.CreateSite(ctx, alice.ID, "https://alice.example", "Alice's shop")
	require.NoError(t, err)

	listed, err := sites.ListSites(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, site.ID, listed[0].ID)

	owns, err := sites.Owns(ctx, alice.ID, site.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = sites.Owns(ctx, bob.ID, site.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	_, err = sites.GetSite(ctx, bob.ID, site.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteService_CreateSite_ValidatesInput(t *testing.T) {
	client := testdb.NewTestClient(t)
	sites := NewSiteService(client.Client)

	_, err := sites.CreateSite(context.Background(), "cust-1", "", "name")
	assert.True(t, IsValidationError(err))

	_, err = sites.CreateSite(context.Background(), "cust-1", "https://example.com", "")
	assert.True(t, IsValidationError(err))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ticketforge/kanbanengine/test/database"
)

func TestCustomerService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewCustomerService(client.Client)

	created, err := svc.CreateCustomer(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, "free", created.Plan)

	fetched, err := svc.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", fetched.Email)

	byEmail, err := svc.GetCustomerByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestCustomerService_CreateCustomer_RejectsEmptyEmail(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCustomerService(client.Client)

	_, err := svc.CreateCustomer(context.Background(), "")
	assert.True(t, IsValidationError(err))
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCustomerService(client.Client)

	_, err := svc.GetCustomer(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

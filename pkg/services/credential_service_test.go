package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/ticketforge/kanbanengine/test/database"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
)

func TestCredentialService_SaveAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	key := crypto.DeriveKey("test-passphrase")
	svc := NewCredentialService(client.Client, key)

	cred, err := svc.SaveCredential(ctx, "site-1", "ssh", "super-secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, cred.Ciphertext)
	assert.NotEmpty(t, cred.Nonce)

	// Ciphertext must never equal the plaintext bytes.
	assert.NotEqual(t, []byte("super-secret-password"), cred.Ciphertext)

	subKey, err := crypto.DeriveCredentialKey(key, cred.ID)
	require.NoError(t, err)
	plaintext, err := crypto.Decrypt(subKey, cred.Nonce, cred.Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "super-secret-password", string(plaintext))

	creds, err := svc.ListCredentials(ctx, "site-1")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "ssh", string(creds[0].CredentialType))
}

func TestCredentialService_SaveCredential_RejectsEmptyValue(t *testing.T) {
	client := testdb.NewTestClient(t)
	key := crypto.DeriveKey("test-passphrase")
	svc := NewCredentialService(client.Client, key)

	_, err := svc.SaveCredential(context.Background(), "site-1", "ssh", "")
	assert.True(t, IsValidationError(err))
}

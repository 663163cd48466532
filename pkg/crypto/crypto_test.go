package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyPadsShortPassphrase(t *testing.T) {
	key := DeriveKey("short")
	require.Len(t, key, keySize)
	assert.Equal(t, byte(' '), key[keySize-1])
}

func TestDeriveKeyTruncatesLongPassphrase(t *testing.T) {
	long := "this passphrase is definitely longer than thirty two bytes"
	key := DeriveKey(long)
	require.Len(t, key, keySize)
	assert.Equal(t, []byte(long[:keySize]), key)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := DeriveKey("a-test-passphrase")
	plaintext := []byte("super-secret-ftp-password")

	nonce, ciphertext, err := Encrypt(key, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := Decrypt(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestDecryptFailsWithWrongKey(t *testing.T) {
	key := DeriveKey("a-test-passphrase")
	other := DeriveKey("a-different-passphrase")
	nonce, ciphertext, err := Encrypt(key, []byte("secret"))
	require.NoError(t, err)

	_, err = Decrypt(other, nonce, ciphertext)
	assert.Error(t, err)
}

func TestDeriveCredentialKeyIsDeterministicAndDistinctPerID(t *testing.T) {
	master := DeriveKey("master-passphrase")

	k1a, err := DeriveCredentialKey(master, "cred-1")
	require.NoError(t, err)
	k1b, err := DeriveCredentialKey(master, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, k1a, k1b)

	k2, err := DeriveCredentialKey(master, "cred-2")
	require.NoError(t, err)
	assert.NotEqual(t, k1a, k2)
}

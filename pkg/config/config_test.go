package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("INTERNAL_CALLBACK_TOKEN", "test-internal-token")
	t.Setenv("CREDENTIAL_ENCRYPTION_KEY", "test-credential-key")
}

func TestLoadSucceedsWithRequiredEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "test-internal-token", cfg.InternalToken)
	assert.Equal(t, "test-credential-key", cfg.CredentialKeyRaw)
	assert.Equal(t, 900*time.Second, cfg.AgentRunTimeout)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Stall)
	assert.NotNil(t, cfg.Retention)
	assert.NotNil(t, cfg.Roles)
}

func TestLoadFailsWithoutInternalToken(t *testing.T) {
	t.Setenv("CREDENTIAL_ENCRYPTION_KEY", "test-credential-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERNAL_CALLBACK_TOKEN")
}

func TestLoadFailsWithoutCredentialKey(t *testing.T) {
	t.Setenv("INTERNAL_CALLBACK_TOKEN", "test-internal-token")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CREDENTIAL_ENCRYPTION_KEY")
}

func TestLoadMissingEnvIsTyped(t *testing.T) {
	t.Setenv("CREDENTIAL_ENCRYPTION_KEY", "test-credential-key")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingEnv)

	var envErr *EnvError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, "INTERNAL_CALLBACK_TOKEN", envErr.Var)
}

func TestLoadFailsOnInvalidRunTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AGENT_RUN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGENT_RUN_TIMEOUT")
}

func TestConfigStats(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.Queues)
	assert.Equal(t, 4, stats.Roles)
}

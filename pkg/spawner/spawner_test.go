package spawner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tools/invoke", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req invokeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sessions_spawn", req.Tool)
		assert.Equal(t, "do work", req.Args.Task)
		assert.Equal(t, "keep", req.Args.Cleanup)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"runId":"run-1","childSessionKey":"sess-1"}}`))
	}))
	defer server.Close()

	s := New(server.URL, "test-token")
	handle, err := s.Spawn(context.Background(), TaskInput{Task: "do work", Model: "claude-default", RunTimeoutSeconds: 900, Cleanup: "keep"})
	require.NoError(t, err)
	assert.Equal(t, "run-1", handle.RunID)
	assert.Equal(t, "sess-1", handle.ChildSessionKey)
}

func TestSpawnNon2xxIsTransientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	s := New(server.URL, "test-token")
	_, err := s.Spawn(context.Background(), TaskInput{Task: "x", Model: "m"})
	require.Error(t, err)
	var transientErr *TransientError
	assert.ErrorAs(t, err, &transientErr)
}

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockBroadcaster is a no-op Broadcaster for listener unit tests that never
// reach receiveLoop (no real Postgres connection).
type mockBroadcaster struct{}

func (mockBroadcaster) Broadcast(string, []byte) {}

func TestNewNotifyListener(t *testing.T) {
	b := mockBroadcaster{}
	listener := NewNotifyListener("host=localhost dbname=test", b)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=test", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Equal(t, b, listener.broadcaster)
}

func TestNotifyListener_ChannelTrackingWithoutConnection(t *testing.T) {
	// Without calling Start(), the listener has no connection.
	// Subscribe/Unsubscribe should return errors/no-ops gracefully.
	listener := NewNotifyListener("host=localhost dbname=test", mockBroadcaster{})

	t.Run("subscribe without connection returns error", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "test-channel")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe without connection is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "test-channel")
		assert.NoError(t, err) // Not listening, so no-op
	})
}

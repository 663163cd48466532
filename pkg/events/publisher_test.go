package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(IssueUpdatedPayload{
			Type:    EventTypeIssueUpdated,
			IssueID: "issue-123",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeIssueUpdated)
		assert.Contains(t, result, "issue-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'a'
		}
		payload, _ := json.Marshal(MessagePayload{
			Type:      EventTypeMessage,
			IssueID:   "issue-456",
			MessageID: "msg-1",
			Body:      string(longBody),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(ActionEventPayload{
			Type:     EventTypeActionStarted,
			IssueID:  "issue-1",
			ActionID: "action-1",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectEventIDAndTruncate(t *testing.T) {
	t.Run("injects event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(MessagePayload{
			Type:      EventTypeMessage,
			IssueID:   "issue-1",
			MessageID: "msg-1",
			Body:      "hello",
		})

		result, err := injectEventIDAndTruncate(payload, "evt-42")
		require.NoError(t, err)
		assert.Contains(t, result, `"event_id":"evt-42"`)
		assert.Contains(t, result, "msg-1")
	})

	t.Run("truncated payload preserves event_id and issue_id", func(t *testing.T) {
		longBody := make([]byte, 8000)
		for i := range longBody {
			longBody[i] = 'x'
		}
		payload, _ := json.Marshal(MessagePayload{
			Type:      EventTypeMessage,
			IssueID:   "issue-789",
			MessageID: "msg-456",
			Body:      string(longBody),
		})

		result, err := injectEventIDAndTruncate(payload, "evt-99")
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"event_id":"evt-99"`)
		assert.Contains(t, result, "issue-789")
		assert.NotContains(t, result, "xxxx")
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

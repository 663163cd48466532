package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueChannel(t *testing.T) {
	tests := []struct {
		name    string
		issueID string
		want    string
	}{
		{name: "formats issue channel correctly", issueID: "abc-123", want: "issue:abc-123"},
		{
			name:    "handles UUID format",
			issueID: "550e8400-e29b-41d4-a716-446655440000",
			want:    "issue:550e8400-e29b-41d4-a716-446655440000",
		},
		{name: "handles empty string", issueID: "", want: "issue:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IssueChannel(tt.issueID))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	types := []string{
		EventTypeIssueUpdated,
		EventTypeMessage,
		EventTypeActionStarted,
		EventTypeActionCompleted,
		EventTypeActionFailed,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

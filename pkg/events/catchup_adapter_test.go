package events

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent"
)

// mockEventQuerier implements eventQuerier for testing the adapter.
type mockEventQuerier struct {
	events []*ent.Event
	err    error
}

func (m *mockEventQuerier) GetEventsSince(_ context.Context, _ string, _ time.Time, limit int) ([]*ent.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.events) > limit {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func TestEventServiceAdapter_GetCatchupEvents(t *testing.T) {
	now := time.Now()
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: "evt-10", CreatedAt: now, Payload: map[string]interface{}{"type": "issue_updated"}},
			{ID: "evt-20", CreatedAt: now.Add(time.Second), Payload: map[string]interface{}{"type": "message"}},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "issue-1", time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "evt-10", events[0].ID)
	assert.Equal(t, "evt-20", events[1].ID)
	assert.Equal(t, "issue_updated", events[0].Payload["type"])
	assert.Equal(t, "message", events[1].Payload["type"])
}

func TestEventServiceAdapter_GetCatchupEvents_WithLimit(t *testing.T) {
	querier := &mockEventQuerier{
		events: []*ent.Event{
			{ID: "evt-1"}, {ID: "evt-2"}, {ID: "evt-3"},
		},
	}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "issue-1", time.Time{}, 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "evt-2", events[1].ID)
}

func TestEventServiceAdapter_GetCatchupEvents_Error(t *testing.T) {
	querier := &mockEventQuerier{err: fmt.Errorf("database connection lost")}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "issue-1", time.Time{}, 10)
	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "database connection lost")
}

func TestEventServiceAdapter_GetCatchupEvents_Empty(t *testing.T) {
	querier := &mockEventQuerier{events: []*ent.Event{}}

	adapter := NewEventServiceAdapter(querier)
	events, err := adapter.GetCatchupEvents(context.Background(), "issue-1", time.Time{}, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

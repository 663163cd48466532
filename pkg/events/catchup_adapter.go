package events

import (
	"context"
	"time"

	"github.com/ticketforge/kanbanengine/ent"
)

// eventQuerier abstracts the event query method needed by EventServiceAdapter.
// Implemented by *services.EventService.
type eventQuerier interface {
	GetEventsSince(ctx context.Context, issueID string, after time.Time, limit int) ([]*ent.Event, error)
}

// CatchupEvent holds the data returned by a catchup query.
type CatchupEvent struct {
	ID        string
	CreatedAt time.Time
	Payload   map[string]interface{}
}

// CatchupQuerier queries events for catchup. Implemented by
// EventServiceAdapter, consumed by pkg/realtime.ConnectionManager.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, issueID string, after time.Time, limit int) ([]CatchupEvent, error)
}

// EventServiceAdapter wraps an eventQuerier to implement CatchupQuerier.
type EventServiceAdapter struct {
	querier eventQuerier
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es eventQuerier) *EventServiceAdapter {
	return &EventServiceAdapter{querier: es}
}

// GetCatchupEvents queries events for issueID created after the given
// cursor, up to limit, for the catchup mechanism. Ordering is by
// created_at rather than a numeric id, since Event's primary key is a
// UUID (pkg/ticketforge convention — every entity keys on a string id).
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, issueID string, after time.Time, limit int) ([]CatchupEvent, error) {
	events, err := a.querier.GetEventsSince(ctx, issueID, after, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(events))
	for i, evt := range events {
		result[i] = CatchupEvent{
			ID:        evt.ID,
			CreatedAt: evt.CreatedAt,
			Payload:   evt.Payload,
		}
	}
	return result, nil
}

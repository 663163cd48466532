package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/event"
)

// EventService reads the durable event log pkg/events.Publisher writes to
// and prunes old rows. Publication itself happens in pkg/events.Publisher,
// which writes the events table directly via raw SQL inside its own
// NOTIFY-carrying transaction; this service never inserts a row.
type EventService struct {
	client *ent.Client
}

// NewEventService builds an EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince returns up to limit events for issueID created strictly
// after the given cursor, oldest first. This is the query
// pkg/events.EventServiceAdapter wraps to implement CatchupQuerier for
// pkg/realtime's reconnect-catchup flow.
func (s *EventService) GetEventsSince(ctx context.Context, issueID string, after time.Time, limit int) ([]*ent.Event, error) {
	evts, err := s.client.Event.Query().
		Where(event.IssueIDEQ(issueID), event.CreatedAtGT(after)).
		Order(ent.Asc(event.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading events since %s for issue %s: %w", after, issueID, err)
	}
	return evts, nil
}

// CleanupOrphanedEvents deletes events older than ttl, run periodically by
// pkg/cleanup. The durable log only needs to outlive the longest plausible
// WebSocket reconnect gap; it is not the system of record for chat history
// or transitions, which live in their own tables indefinitely.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleaning up events older than %s: %w", cutoff, err)
	}
	return count, nil
}

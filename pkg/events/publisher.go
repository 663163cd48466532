package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Publisher publishes events for real-time delivery. Persistent events are
// stored in the events table then broadcast via NOTIFY, in a single
// transaction so pg_notify (transactional — held until COMMIT) never fires
// for a row the commit later rolls back.
//
// Implements pkg/statemachine.EventPublisher (PublishIssueUpdated), which
// every caller of statemachine.Apply reaches through it. PublishMessage is
// called by pkg/services.ChatMessageService; nothing in this module calls
// PublishActionEvent.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher. db should be the *sql.DB backing
// the ent client (pkg/database.Client.DB()).
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishIssueUpdated publishes an issue_updated event to the issue's
// channel. The caller (pkg/statemachine.Apply's side-effect hook) supplies
// the post-transition projection in payload, since the transition itself is
// still uncommitted at publish time and a read-back here would see the old
// row.
func (p *Publisher) PublishIssueUpdated(ctx context.Context, issueID string, payload IssueUpdatedPayload) error {
	payload.Type = EventTypeIssueUpdated
	payload.IssueID = issueID
	payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling IssueUpdatedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, issueID, EventTypeIssueUpdated, payloadJSON)
}

// PublishMessage persists and broadcasts a message event. Called right
// after a ChatMessage row is created.
func (p *Publisher) PublishMessage(ctx context.Context, issueID string, payload MessagePayload) error {
	payload.Type = EventTypeMessage
	payload.IssueID = issueID
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling MessagePayload: %w", err)
	}
	return p.persistAndNotify(ctx, issueID, EventTypeMessage, payloadJSON)
}

// PublishActionEvent persists and broadcasts an action_started/completed/
// failed event. eventType must be one of the three EventTypeAction*
// constants.
func (p *Publisher) PublishActionEvent(ctx context.Context, issueID, eventType string, payload ActionEventPayload) error {
	payload.Type = eventType
	payload.IssueID = issueID
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling ActionEventPayload: %w", err)
	}
	return p.persistAndNotify(ctx, issueID, eventType, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts it via NOTIFY in a single transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, issueID, eventType string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning publish transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	eventID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events (event_id, issue_id, event_type, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		eventID, issueID, eventType, payloadJSON, time.Now(),
	); err != nil {
		return fmt.Errorf("persisting event: %w", err)
	}

	notifyPayload, err := injectEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	channel := IssueChannel(issueID)
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing publish transaction: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectEventIDAndTruncate adds event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectEventIDAndTruncate(payloadJSON []byte, eventID string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("unmarshaling payload for event_id injection: %w", err)
	}
	m["event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields a client needs to
// fetch the complete event from the database via catchup.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type    string `json:"type"`
		IssueID string `json:"issue_id"`
		EventID string `json:"event_id"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("extracting routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"issue_id":  routing.IssueID,
		"event_id":  routing.EventID,
		"truncated": true,
	}
	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshaling truncated payload: %w", err)
	}
	return string(truncBytes), nil
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event is a persisted record of one EventBus publication, keyed by issue.
// It backs the Postgres LISTEN/NOTIFY fan-out: a row is written so a client
// reconnecting after a gap can be caught up, and so NOTIFY payloads (which
// Postgres caps at 8000 bytes) can carry just the event id.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("issue_id").
			Immutable().
			Comment("Channel key: events are delivered per-issue"),
		field.Enum("event_type").
			Values("issue_updated", "message", "action_started", "action_completed", "action_failed").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data forwarded verbatim to subscribed clients"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return nil
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("issue_id", "created_at"),
	}
}

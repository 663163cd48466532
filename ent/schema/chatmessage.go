package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one entry in an issue's conversation thread: customer
// messages, agent replies, and system-authored notices (stall warnings,
// escalation notices, failure notices) all land here.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_message_id").
			Unique().
			Immutable(),
		field.String("issue_id").
			Immutable(),
		field.Enum("author").
			Values("customer", "pm_agent", "dev_agent", "qa_agent", "tech_lead", "system").
			Immutable(),
		field.Text("body").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChatMessage.
func (ChatMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("issue", Issue.Type).
			Ref("chat_messages").
			Field("issue_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("issue_id", "created_at"),
	}
}

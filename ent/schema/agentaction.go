package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentAction records one AgentRunner invocation for an issue: its role,
// lifecycle state, and (on failure) the error summary. Used by the
// WebSocket connect-time snapshot's action count.
type AgentAction struct {
	ent.Schema
}

// Fields of the AgentAction.
func (AgentAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_action_id").
			Unique().
			Immutable(),
		field.String("issue_id").
			Immutable(),
		field.Enum("role").
			Values("pm_agent", "dev_agent", "qa_agent", "tech_lead").
			Immutable(),
		field.Enum("status").
			Values("started", "completed", "failed").
			Default("started"),
		field.Text("error_summary").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentAction.
func (AgentAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("issue", Issue.Type).
			Ref("agent_actions").
			Field("issue_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentAction.
func (AgentAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("issue_id", "started_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketTransition is an audited column change: the only way an Issue's
// kanban_column may change. Rows are append-only and totally ordered by
// created_at per issue (spec ordering guarantee (a)).
type TicketTransition struct {
	ent.Schema
}

// Fields of the TicketTransition.
func (TicketTransition) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transition_id").
			Unique().
			Immutable(),
		field.String("issue_id").
			Immutable(),
		field.Enum("actor").
			Values("pm_agent", "dev_agent", "qa_agent", "tech_lead", "customer", "system").
			Immutable(),
		field.Enum("from_column").
			Values(
				"triage",
				"ready_for_uat_approval",
				"todo",
				"in_progress",
				"ready_for_qa",
				"in_qa",
				"ready_for_uat",
				"done",
				"dismissed",
			).
			Immutable(),
		field.Enum("to_column").
			Values(
				"triage",
				"ready_for_uat_approval",
				"todo",
				"in_progress",
				"ready_for_qa",
				"in_qa",
				"ready_for_uat",
				"done",
				"dismissed",
			).
			Immutable(),
		field.Text("note").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketTransition.
func (TicketTransition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("issue", Issue.Type).
			Ref("transitions").
			Field("issue_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketTransition.
func (TicketTransition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("issue_id", "created_at"),
	}
}

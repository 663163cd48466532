package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Issue is the state-machine subject: one customer-reported ticket moving
// through the nine-stage kanban pipeline.
type Issue struct {
	ent.Schema
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.String("site_id").
			Immutable(),
		field.String("customer_id").
			Immutable().
			Comment("Tenant scoping column; every query must filter on this"),
		field.Int64("ticket_number").
			Immutable().
			Comment("Monotonic per-tenant sequence, assigned from customer_ticket_sequences at creation"),
		field.String("title"),
		field.Text("description").
			Comment("Mutable: PM appends customer feedback here"),
		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),
		field.Enum("issue_type").
			Values("maintenance", "site_build"),
		field.Enum("kanban_column").
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
			Default("triage"),
		field.Enum("legacy_status").
			Values("open", "in_progress", "pending_approval", "resolved", "dismissed").
			Default("open").
			Comment("Derived projection of kanban_column; kept in sync by the state machine, never written directly"),
		field.Float("confidence_score").
			Default(0).
			Optional(),
		field.Int("dev_fail_count").
			Default(0).
			Comment("Monotonically increasing; never decreases (invariant I2)"),
		field.String("pm_agent_id").
			Optional().
			Nillable(),
		field.String("dev_agent_id").
			Optional().
			Nillable(),
		field.Time("stall_check_at").
			Optional().
			Nillable().
			Comment("Earliest time the StallController may re-examine this issue"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("Non-null iff kanban_column = done (invariant I3)"),
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("site", Site.Type).
			Ref("issues").
			Field("site_id").
			Unique().
			Required().
			Immutable(),
		edge.To("transitions", TicketTransition.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_actions", AgentAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("customer_id"),
		index.Fields("site_id"),
		index.Fields("customer_id", "ticket_number").Unique(),
		index.Fields("kanban_column", "stall_check_at").
			StorageKey("idx_issue_stall_candidates"),
	}
}

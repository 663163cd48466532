package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job backs the Dispatcher: a generalized unit of work claimed with
// `SELECT ... FOR UPDATE SKIP LOCKED`, one row per job, so a single queue
// table can carry both agent-run work and the periodic stall sweep.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("queue").
			Values("agent", "backend").
			Immutable(),
		field.String("name").
			Immutable().
			Comment("e.g. run_pm_agent, run_dev_agent, run_qa_agent, run_tech_lead, stall_sweep"),
		field.JSON("args", map[string]interface{}{}).
			Optional().
			Comment("JSON-serialized job arguments (issue_id, role, etc.)"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Time("run_at").
			Default(time.Now).
			Comment("Job is not claimable before this time; used for delayed execution and backoff"),
		field.String("locked_by").
			Optional().
			Nillable().
			Comment("Worker id holding the claim"),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return nil
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "run_at").
			StorageKey("idx_job_claim_candidates"),
	}
}

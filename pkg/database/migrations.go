package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over issue descriptions and chat
// transcripts.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_issues_description_gin
		ON issues USING gin(to_tsvector('english', description))`)
	if err != nil {
		return fmt.Errorf("failed to create issue description GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_body_gin
		ON chat_messages USING gin(to_tsvector('english', body))`)
	if err != nil {
		return fmt.Errorf("failed to create chat message body GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates partial unique indexes enforcing
// invariants the ent schema cannot express directly:
//
//   - I4: at most one AgentAction per (issue_id, role) may be "started" at
//     a time. pkg/lock's Redis single-flight lock is the primary
//     enforcement mechanism; this index is a database-level backstop
//     against the lock's own fail-open behavior (TryAcquire returns true
//     on Redis unreachability) so a concurrent double-run can never leave
//     two started AgentAction rows for the same issue/role even when the
//     lock itself was unavailable.
//   - At most one pending `stall_sweep`-named job may queue at a time, so a
//     cron misfire or overlapping process doesn't pile up duplicate sweeps.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_agent_actions_one_started_per_role
		ON agent_actions (issue_id, role) WHERE status = 'started'`)
	if err != nil {
		return fmt.Errorf("failed to create agent_actions single-flight index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_one_pending_stall_sweep
		ON jobs (name) WHERE name = 'stall_sweep' AND status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create jobs stall-sweep uniqueness index: %w", err)
	}

	return nil
}

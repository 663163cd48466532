package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/tickettransition"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/events"
)

// devFailEscalationThreshold is the dev_fail_count value at which a
// tech_lead job is enqueued instead of re-enqueuing dev_agent. A
// successful dev cycle never resets this counter.
const devFailEscalationThreshold = 3

// Dispatcher is the subset of pkg/dispatch.Dispatcher the state machine
// needs to enqueue post-transition work. The tx-scoped form makes the job
// row part of the same commit as the transition it follows from.
type Dispatcher interface {
	EnqueueTx(ctx context.Context, tx *ent.Tx, queue config.QueueName, name string, args map[string]interface{}) (string, error)
}

// EventPublisher is the subset of pkg/events.Publisher the state machine
// needs to announce column changes. The payload carries the post-transition
// projection so the publisher never has to read the issue row back (the
// transition is still uncommitted when this is called).
type EventPublisher interface {
	PublishIssueUpdated(ctx context.Context, issueID string, payload events.IssueUpdatedPayload) error
}

// Result summarizes what Apply did.
type Result struct {
	FromColumn   Column
	ToColumn     Column
	DevFailCount int
}

// Apply is the only code path allowed to change an Issue's kanban_column.
// It must run inside tx so the transition row, issue update, and any chat
// append the caller makes in the same tx commit atomically.
func Apply(ctx context.Context, tx *ent.Tx, dispatcher Dispatcher, publisher EventPublisher, issueID string, actor Actor, to Column, note string) (*Result, error) {
	iss, err := tx.Issue.Query().
		Where(issue.IDEQ(issueID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading issue %s: %w", issueID, err)
	}

	from := Column(iss.KanbanColumn)

	if from == ColumnDone || from == ColumnDismissed {
		return nil, &ConflictError{Actor: actor, From: from, To: to, Reason: "issue is in a terminal column"}
	}

	// A transition explicitly granted by the permission matrix always
	// applies as-is, including the matrix's own backward moves
	// (ready_for_uat->todo, in_qa->todo on UAT/QA fail) — those are never
	// "stale", whatever their relative column index. The idempotency
	// guard only covers the remaining case: a request the matrix does not
	// grant from the issue's *current* column, which is stale/duplicate
	// precisely when that column has already reached or passed the
	// requested target (spec.md §4.1, §4.6).
	if !IsAllowed(actor, from, to) {
		if to != ColumnDismissed && Index(to) != -1 && Index(from) >= Index(to) {
			return nil, &IdempotencyNoop{CurrentColumn: from, Requested: to}
		}
		return nil, &ConflictError{Actor: actor, From: from, To: to, Reason: "actor is not permitted to make this transition"}
	}

	devFailCount := iss.DevFailCount
	escalate := false
	if IncrementsDevFailCount(from, to) {
		devFailCount++
		if devFailCount >= devFailEscalationThreshold {
			escalate = true
		}
	}

	update := tx.Issue.UpdateOneID(issueID).
		SetKanbanColumn(issue.KanbanColumn(to)).
		SetLegacyStatus(issue.LegacyStatus(ProjectLegacyStatus(to))).
		SetDevFailCount(devFailCount)

	now := time.Now()
	switch to {
	case ColumnInProgress:
		update = update.SetStallCheckAt(now)
	case ColumnDone:
		update = update.SetResolvedAt(now)
	}

	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("updating issue column: %w", err)
	}

	if _, err := tx.TicketTransition.Create().
		SetID(uuid.NewString()).
		SetIssueID(issueID).
		SetActor(tickettransition.Actor(actor)).
		SetFromColumn(tickettransition.FromColumn(from)).
		SetToColumn(tickettransition.ToColumn(to)).
		SetNillableNote(nonEmpty(note)).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("recording transition: %w", err)
	}

	// System-actor backward moves are stall/failure reverts: they put the
	// issue back in its pickup column but leave re-dispatch to the stall
	// sweep, so a persistently failing runner retries on the sweep cadence
	// instead of in a tight enqueue loop.
	systemRevert := actor == ActorSystem && Index(to) != -1 && Index(to) < Index(from)

	payload := events.IssueUpdatedPayload{
		KanbanColumn: string(to),
		LegacyStatus: string(ProjectLegacyStatus(to)),
		DevFailCount: devFailCount,
		Confidence:   iss.ConfidenceScore,
	}
	if err := applySideEffects(ctx, tx, dispatcher, publisher, issueID, to, payload, escalate, systemRevert); err != nil {
		return nil, fmt.Errorf("applying side effects: %w", err)
	}

	return &Result{FromColumn: from, ToColumn: to, DevFailCount: devFailCount}, nil
}

// applySideEffects runs every post-transition side effect. Job enqueues go
// through the caller's transaction (outbox); the event publish is
// best-effort and never rolls the transition back. An escalated
// dev_fail_count suppresses the normal "enqueue dev_agent" effect of
// entering todo and enqueues tech_lead instead; a system revert suppresses
// job enqueues entirely.
func applySideEffects(ctx context.Context, tx *ent.Tx, dispatcher Dispatcher, publisher EventPublisher, issueID string, to Column, payload events.IssueUpdatedPayload, escalate, systemRevert bool) error {
	switch {
	case systemRevert:
	case escalate:
		if _, err := dispatcher.EnqueueTx(ctx, tx, config.QueueBackend, "run_tech_lead", map[string]interface{}{"issue_id": issueID}); err != nil {
			return err
		}
	case to == ColumnTodo:
		if _, err := dispatcher.EnqueueTx(ctx, tx, config.QueueBackend, "run_dev_agent", map[string]interface{}{"issue_id": issueID}); err != nil {
			return err
		}
	case to == ColumnReadyForQA:
		if _, err := dispatcher.EnqueueTx(ctx, tx, config.QueueBackend, "run_qa_agent", map[string]interface{}{"issue_id": issueID}); err != nil {
			return err
		}
	}

	if publisher != nil {
		return publisher.PublishIssueUpdated(ctx, issueID, payload)
	}
	return nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Package callback implements the internal agent-result endpoint: the
// only way a spawned dev_agent/qa_agent/tech_lead session reports back.
// pm_agent never calls this — its side effects apply inline
// (pkg/pmactions).
package callback

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/pkg/agentrunner"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/lock"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// ErrUnauthorized means the bearer token did not match the configured
// internal token.
var ErrUnauthorized = errors.New("invalid internal callback token")

// Status is the agent-reported outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Request is the body of POST /internal/agent-result.
type Request struct {
	IssueID      string  `json:"issue_id"`
	AgentRole    string  `json:"agent_role"`
	Status       Status  `json:"status"`
	Message      string  `json:"message"`
	TransitionTo *string `json:"transition_to,omitempty"`
}

// Response is the body returned to the agent host.
type Response struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Locker is the subset of pkg/lock.Service the handler needs.
type Locker interface {
	Release(ctx context.Context, key string)
}

// Handler processes agent-result callbacks.
type Handler struct {
	client        *ent.Client
	locker        Locker
	dispatcher    statemachine.Dispatcher
	publisher     statemachine.EventPublisher
	internalToken string
}

// New builds a Handler.
func New(client *ent.Client, locker Locker, dispatcher statemachine.Dispatcher, publisher statemachine.EventPublisher, cfg *config.Config) *Handler {
	return &Handler{
		client:        client,
		locker:        locker,
		dispatcher:    dispatcher,
		publisher:     publisher,
		internalToken: cfg.InternalToken,
	}
}

// isStale reports whether a callback requesting from->to would be treated
// as a duplicate/late no-op by statemachine.Apply's idempotency guard. It
// mirrors Apply's own ordering: a transition the permission matrix grants
// from the issue's current column (including the matrix's backward
// fail-path moves, e.g. in_qa->todo on QA failure) is never stale,
// regardless of column index; only a request the matrix does not grant
// from the current column, where that column has already reached or
// passed the requested target, is a genuine duplicate.
func isStale(actor statemachine.Actor, from, to statemachine.Column) bool {
	if statemachine.IsAllowed(actor, from, to) {
		return false
	}
	return to != statemachine.ColumnDismissed && statemachine.Index(to) != -1 && statemachine.Index(from) >= statemachine.Index(to)
}

// Authorize checks bearerToken against the configured internal token in
// constant time.
func (h *Handler) Authorize(bearerToken string) bool {
	return subtle.ConstantTimeCompare([]byte(bearerToken), []byte(h.internalToken)) == 1
}

// Handle processes req in a fixed order: idempotency check, chat append,
// transition, lock release.
func (h *Handler) Handle(ctx context.Context, req Request) (*Response, error) {
	iss, err := h.client.Issue.Get(ctx, req.IssueID)
	if err != nil {
		return nil, fmt.Errorf("loading issue %s: %w", req.IssueID, err)
	}

	role := config.Role(req.AgentRole)

	// Step 2: idempotency. A stale transition_to (already superseded by a
	// later column, and not itself a matrix-granted transition from the
	// current column) means this is a duplicate/late callback; skip
	// entirely without posting chat or touching the lock, matching a
	// duplicate arriving after the first callback already released it.
	if req.TransitionTo != nil && isStale(agentrunner.CompletionActor(role), statemachine.Column(iss.KanbanColumn), statemachine.Column(*req.TransitionTo)) {
		return &Response{OK: true, Skipped: true}, nil
	}

	tx, err := h.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening transaction: %w", err)
	}
	defer tx.Rollback()

	// Step 3: chat append, prefixed per outcome.
	prefix := "✅ "
	if req.Status == StatusFailure {
		prefix = "❌ "
	}
	if _, err := tx.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetIssueID(req.IssueID).
		SetAuthor(chatmessage.Author(role)).
		SetBody(prefix + req.Message).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("posting callback chat message: %w", err)
	}

	// Step 4: transition, if requested. A failure here is a warning, not a
	// rollback of the chat message just posted.
	var warning string
	if req.TransitionTo != nil {
		to := statemachine.Column(*req.TransitionTo)
		if !agentrunner.ResultAllowed(role, to) {
			warning = fmt.Sprintf("role %s may not request transition to %s", role, to)
		} else {
			actor := agentrunner.CompletionActor(role)
			if _, err := statemachine.Apply(ctx, tx, h.dispatcher, h.publisher, req.IssueID, actor, to, req.Message); err != nil {
				if _, ok := err.(*statemachine.IdempotencyNoop); !ok {
					warning = err.Error()
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing callback: %w", err)
	}

	// Step 5: release the single-flight lock so the next stage can proceed.
	h.locker.Release(ctx, lock.IssueRoleKey(req.IssueID, req.AgentRole))

	return &Response{OK: true, Warning: warning}, nil
}

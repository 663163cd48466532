// Package agentrunner implements the spawn-and-callback protocol used by
// dev_agent, qa_agent, and tech_lead. pm_agent's distinct synchronous path
// lives in pkg/pmactions.
package agentrunner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/agentaction"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/sitecredential"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
	"github.com/ticketforge/kanbanengine/pkg/lock"
	"github.com/ticketforge/kanbanengine/pkg/metrics"
	"github.com/ticketforge/kanbanengine/pkg/spawner"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// chatHistoryDepth bounds how much chat history is folded into a
// role's prompt: the last 15 messages.
const chatHistoryDepth = 15

// lockTTLSlack extends the lock's TTL past the configured run timeout so a
// slow agent host doesn't lose its lock out from under it before its own
// callback arrives.
const lockTTLSlack = 2 * time.Minute

// Locker is the subset of pkg/lock.Service the runner needs.
type Locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) bool
	Release(ctx context.Context, key string)
}

// Spawner is the subset of pkg/spawner.Spawner the runner needs.
type Spawner interface {
	Spawn(ctx context.Context, input spawner.TaskInput) (*spawner.SessionHandle, error)
}

// Runner executes the fixed 7-step AgentRunner protocol for dev/qa/tech_lead.
type Runner struct {
	client        *ent.Client
	locker        Locker
	dispatcher    statemachine.Dispatcher
	publisher     statemachine.EventPublisher
	spawn         Spawner
	roles         *config.RoleConfig
	runTimeout    time.Duration
	callbackBase  string
	internalToken string
	credentialKey []byte
}

// New builds a Runner. credentialKey is the master key pkg/crypto derived
// from CREDENTIAL_ENCRYPTION_KEY at startup.
func New(client *ent.Client, locker Locker, dispatcher statemachine.Dispatcher, publisher statemachine.EventPublisher, spawn Spawner, cfg *config.Config, credentialKey []byte) *Runner {
	return &Runner{
		client:        client,
		locker:        locker,
		dispatcher:    dispatcher,
		publisher:     publisher,
		spawn:         spawn,
		roles:         cfg.Roles,
		runTimeout:    cfg.AgentRunTimeout,
		callbackBase:  cfg.SpawnCallbackBase,
		internalToken: cfg.InternalToken,
		credentialKey: credentialKey,
	}
}

// ErrLockHeld means another run for this issue/role is already in flight.
// Not an error condition worth alerting on; the caller (a dispatch.Handler)
// should simply let the job complete, the stall controller will retry.
type ErrLockHeld struct {
	IssueID string
	Role    config.Role
}

func (e *ErrLockHeld) Error() string {
	return fmt.Sprintf("issue %s role %s: another run is already in flight", e.IssueID, e.Role)
}

// Run executes the 7-step protocol for issueID under role. It returns once
// the external agent host has accepted the task; it does not wait for the
// agent to finish. The lock acquired in step 1 is intentionally NOT
// released on success — it is released by pkg/callback when the agent's
// completion callback arrives, or expires with its TTL (run timeout plus
// lockTTLSlack) if it never does.
func (r *Runner) Run(ctx context.Context, issueID string, role config.Role) error {
	key := lock.IssueRoleKey(issueID, string(role))
	if !r.locker.TryAcquire(ctx, key, r.runTimeout+lockTTLSlack) {
		metrics.RecordAgentRunnerOutcome(string(role), "lock_held")
		return &ErrLockHeld{IssueID: issueID, Role: role}
	}

	succeeded := false
	defer func() {
		if !succeeded {
			r.locker.Release(ctx, key)
		}
	}()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("opening transaction: %w", err)
	}
	defer tx.Rollback()

	iss, err := tx.Issue.Query().Where(issue.IDEQ(issueID)).Only(ctx)
	if err != nil {
		return fmt.Errorf("loading issue %s: %w", issueID, err)
	}

	from := statemachine.Column(iss.KanbanColumn)
	if !entryAllowed(role, from) {
		// Issue moved on (or was dismissed) between enqueue and claim;
		// this is expected under at-least-once dispatch, not a failure.
		return nil
	}

	s := specs[role]
	if _, err := statemachine.Apply(ctx, tx, r.dispatcher, r.publisher, issueID, s.completionActor, s.workColumn, ""); err != nil {
		if _, ok := err.(*statemachine.IdempotencyNoop); ok {
			return nil
		}
		return fmt.Errorf("entering work column: %w", err)
	}

	if _, err := tx.ChatMessage.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetAuthor(chatmessage.Author(role)).
		SetBody(fmt.Sprintf("%s starting…", role)).
		Save(ctx); err != nil {
		return fmt.Errorf("posting starting chat message: %w", err)
	}

	promptCtx, err := r.gatherContext(ctx, tx, iss, role)
	if err != nil {
		// Nothing to revert: the entry transition above is still
		// uncommitted, so rolling back puts the issue straight back in
		// its pickup column for the stall sweep to retry.
		_ = tx.Rollback()
		r.recordFailure(ctx, issueID, role, fmt.Sprintf("gathering context: %v", err))
		metrics.RecordAgentRunnerOutcome(string(role), "failed")
		return err
	}

	action, err := tx.AgentAction.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetRole(agentaction.Role(role)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("recording agent action: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	handle, err := r.spawn.Spawn(ctx, spawner.TaskInput{
		Task:              promptCtx,
		Label:             fmt.Sprintf("%s:%s", role, issueID),
		Model:             r.roles.Models[role],
		RunTimeoutSeconds: int(r.runTimeout.Seconds()),
		Cleanup:           "keep",
	})
	if err != nil {
		r.markActionFailed(ctx, action.ID, err)
		r.revertOnFailure(ctx, issueID, role, from, err.Error())
		metrics.RecordAgentRunnerOutcome(string(role), "failed")
		return fmt.Errorf("spawning %s: %w", role, err)
	}

	succeeded = true
	metrics.RecordAgentRunnerOutcome(string(role), "spawned")
	r.postProgressMessage(ctx, issueID, role, handle)
	return nil
}

// revertOnFailure implements the AgentRunner failure path: the column
// reverts to its pre-run value, the audit note carries the internal
// reason, and a user-visible chat message (without the internal error
// text) explains that the run failed. Re-dispatch is left to the stall
// sweep.
func (r *Runner) revertOnFailure(ctx context.Context, issueID string, role config.Role, revertTo statemachine.Column, reason string) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		slog.Error("reverting failed run: opening tx", "issue_id", issueID, "role", role, "error", err)
		return
	}
	defer tx.Rollback()

	if _, err := statemachine.Apply(ctx, tx, r.dispatcher, r.publisher, issueID, statemachine.ActorSystem, revertTo, fmt.Sprintf("%s run failed: %s", role, reason)); err != nil {
		if _, ok := err.(*statemachine.IdempotencyNoop); !ok {
			slog.Error("reverting failed run: applying transition", "issue_id", issueID, "role", role, "error", err)
		}
	}

	if _, err := tx.ChatMessage.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetAuthor(chatmessage.AuthorSystem).
		SetBody(fmt.Sprintf("❌ %s could not be started — it will be retried automatically", role)).
		Save(ctx); err != nil {
		slog.Error("posting failure chat message", "issue_id", issueID, "error", err)
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("committing revert", "issue_id", issueID, "error", err)
	}

	slog.Error("agent run failed", "issue_id", issueID, "role", role, "reason", firstN(reason, 500))
}

// recordFailure is the pre-commit failure path: the entry transition never
// committed, so only an AgentAction{failed} row and a user-visible chat
// message are written.
func (r *Runner) recordFailure(ctx context.Context, issueID string, role config.Role, reason string) {
	now := time.Now()
	if _, err := r.client.AgentAction.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetRole(agentaction.Role(role)).
		SetStatus(agentaction.StatusFailed).
		SetErrorSummary(firstN(reason, 500)).
		SetFinishedAt(now).
		Save(ctx); err != nil {
		slog.Error("recording failed agent action", "issue_id", issueID, "error", err)
	}

	if _, err := r.client.ChatMessage.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetAuthor(chatmessage.AuthorSystem).
		SetBody(fmt.Sprintf("❌ %s could not be started — it will be retried automatically", role)).
		Save(ctx); err != nil {
		slog.Error("posting failure chat message", "issue_id", issueID, "error", err)
	}

	slog.Error("agent run failed", "issue_id", issueID, "role", role, "reason", firstN(reason, 500))
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (r *Runner) markActionFailed(ctx context.Context, actionID string, cause error) {
	now := time.Now()
	summary := firstN(cause.Error(), 500)
	if _, err := r.client.AgentAction.UpdateOneID(actionID).
		SetStatus(agentaction.StatusFailed).
		SetErrorSummary(summary).
		SetFinishedAt(now).
		Save(ctx); err != nil {
		slog.Error("marking agent action failed", "action_id", actionID, "error", err)
	}
}

func (r *Runner) postProgressMessage(ctx context.Context, issueID string, role config.Role, handle *spawner.SessionHandle) {
	body := fmt.Sprintf("%s started (session %s)", role, handle.ChildSessionKey)
	if _, err := r.client.ChatMessage.Create().
		SetID(newID()).
		SetIssueID(issueID).
		SetAuthor(chatmessage.Author(role)).
		SetBody(body).
		Save(ctx); err != nil {
		slog.Error("posting progress chat message", "issue_id", issueID, "error", err)
	}
}

// gatherContext builds the bounded prompt: issue title/description/
// dev_fail_count, decrypted credentials, the last chatHistoryDepth chat
// messages, and the callback instructions the agent must use to report
// back. File attachments are never listed.
func (r *Runner) gatherContext(ctx context.Context, tx *ent.Tx, iss *ent.Issue, role config.Role) (string, error) {
	creds, err := tx.SiteCredential.Query().Where(sitecredential.SiteIDEQ(iss.SiteID)).All(ctx)
	if err != nil {
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	var credLines []string
	for _, c := range creds {
		subKey, err := crypto.DeriveCredentialKey(r.credentialKey, c.ID)
		if err != nil {
			return "", fmt.Errorf("deriving credential subkey for %s: %w", c.ID, err)
		}
		plaintext, err := crypto.Decrypt(subKey, c.Nonce, c.Ciphertext)
		if err != nil {
			return "", fmt.Errorf("decrypting credential %s: %w", c.ID, err)
		}
		credLines = append(credLines, fmt.Sprintf("%s: %s", c.CredentialType, string(plaintext)))
	}

	messages, err := tx.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(iss.ID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(chatHistoryDepth).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("loading chat history: %w", err)
	}

	var history []string
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		history = append(history, fmt.Sprintf("%s: %s", m.Author, m.Body))
	}

	callbackURL := fmt.Sprintf("%s/internal/agent-result", r.callbackBase)
	allowed := specs[role].allowedResults
	allowedStrs := make([]string, len(allowed))
	for i, c := range allowed {
		allowedStrs[i] = string(c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ticket #%d: %s\n\n", iss.TicketNumber, iss.Title)
	fmt.Fprintf(&b, "Description:\n%s\n\n", iss.Description)
	fmt.Fprintf(&b, "Dev fail count: %d\n\n", iss.DevFailCount)
	if len(credLines) > 0 {
		fmt.Fprintf(&b, "Site credentials:\n%s\n\n", strings.Join(credLines, "\n"))
	}
	if len(history) > 0 {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n\n", strings.Join(history, "\n"))
	}
	fmt.Fprintf(&b, "When finished, POST to %s with bearer token %s and JSON body\n", callbackURL, r.internalToken)
	fmt.Fprintf(&b, "{\"issue_id\": %q, \"agent_role\": %q, \"status\": \"success\" or \"failure\", \"message\": \"...\", \"transition_to\": one of %v or null}\n", iss.ID, role, allowedStrs)

	prompt := b.String()
	budget := specs[role].wordBudget
	if words := strings.Fields(prompt); len(words) > budget {
		prompt = strings.Join(words[:budget], " ") + "\n...[truncated to word budget]"
	}
	return prompt, nil
}

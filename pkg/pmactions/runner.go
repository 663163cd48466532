package pmactions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/sitecredential"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// pmChatDepth is the same history window AgentRunner uses; PM's prompt is
// built the same way even though its call is synchronous rather than
// spawned.
const pmChatDepth = 15

// Runner executes pm_agent's synchronous path: one Gateway call, then
// marker parsing and side-effect application, all in a single transaction
// so the chat append, any transition, and any description/credential write
// commit atomically.
type Runner struct {
	client        *ent.Client
	gateway       Gateway
	dispatcher    statemachine.Dispatcher
	publisher     statemachine.EventPublisher
	model         string
	credentialKey []byte
}

// New builds a pm_agent Runner.
func New(client *ent.Client, gateway Gateway, dispatcher statemachine.Dispatcher, publisher statemachine.EventPublisher, cfg *config.Config, credentialKey []byte) *Runner {
	return &Runner{
		client:        client,
		gateway:       gateway,
		dispatcher:    dispatcher,
		publisher:     publisher,
		model:         cfg.Roles.Models[config.RolePM],
		credentialKey: credentialKey,
	}
}

// Run calls the Gateway for issueID and applies whatever action markers the
// reply contains. Invoked synchronously whenever a customer posts a chat
// message.
func (r *Runner) Run(ctx context.Context, issueID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("opening transaction: %w", err)
	}
	defer tx.Rollback()

	iss, err := tx.Issue.Query().Where(issue.IDEQ(issueID)).Only(ctx)
	if err != nil {
		return fmt.Errorf("loading issue %s: %w", issueID, err)
	}

	if statemachine.Column(iss.KanbanColumn) == statemachine.ColumnDone ||
		statemachine.Column(iss.KanbanColumn) == statemachine.ColumnDismissed {
		return nil
	}

	prompt, err := r.buildPrompt(ctx, tx, iss)
	if err != nil {
		return fmt.Errorf("building prompt: %w", err)
	}

	reply, err := r.gateway.Complete(ctx, r.model, prompt)
	if err != nil {
		return fmt.Errorf("pm_agent gateway call: %w", err)
	}

	markers, visible := Parse(reply)

	if strings.TrimSpace(visible) != "" {
		if _, err := tx.ChatMessage.Create().
			SetID(uuid.NewString()).
			SetIssueID(issueID).
			SetAuthor(chatmessage.AuthorPmAgent).
			SetBody(strings.TrimSpace(visible)).
			Save(ctx); err != nil {
			return fmt.Errorf("posting pm_agent reply: %w", err)
		}
	}

	for _, m := range markers {
		if err := r.apply(ctx, tx, iss, m); err != nil {
			slog.Error("applying pm_agent marker", "issue_id", issueID, "marker", m.Kind, "error", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pm_agent run: %w", err)
	}
	return nil
}

// apply dispatches one parsed marker to its side effect.
func (r *Runner) apply(ctx context.Context, tx *ent.Tx, iss *ent.Issue, m Marker) error {
	switch m.Kind {
	case MarkerTicketAction, MarkerTicketConfirmed:
		to := m.Get("to_column").String()
		if to == "" {
			if m.Kind != MarkerTicketConfirmed {
				return nil
			}
			// ticket_confirmed with no explicit target means triage is
			// complete: hand the ticket to the customer for approval.
			to = string(statemachine.ColumnReadyForUATApproval)
		}
		_, err := statemachine.Apply(ctx, tx, r.dispatcher, r.publisher, iss.ID, statemachine.ActorPM, statemachine.Column(to), m.Get("note").String())
		if _, ok := err.(*statemachine.IdempotencyNoop); ok {
			return nil
		}
		return err

	case MarkerUpdateDescription:
		appendText := m.Get("text").String()
		if appendText == "" {
			return nil
		}
		_, err := tx.Issue.UpdateOneID(iss.ID).
			SetDescription(iss.Description + "\n\n" + appendText).
			Save(ctx)
		return err

	case MarkerSaveCredential:
		return r.saveCredential(ctx, tx, m)
	}
	return nil
}

// saveCredential encrypts and stores a credential reported by pm_agent, the
// same side effect POST /internal/save-credential performs directly.
func (r *Runner) saveCredential(ctx context.Context, tx *ent.Tx, m Marker) error {
	siteID := m.Get("site_id").String()
	credType := m.Get("credential_type").String()
	value := m.Get("value").String()
	if siteID == "" || credType == "" || value == "" {
		return fmt.Errorf("save_credential marker missing required fields")
	}

	id := uuid.NewString()
	subKey, err := crypto.DeriveCredentialKey(r.credentialKey, id)
	if err != nil {
		return fmt.Errorf("deriving credential subkey: %w", err)
	}
	nonce, ciphertext, err := crypto.Encrypt(subKey, []byte(value))
	if err != nil {
		return fmt.Errorf("encrypting credential: %w", err)
	}

	_, err = tx.SiteCredential.Create().
		SetID(id).
		SetSiteID(siteID).
		SetCredentialType(sitecredential.CredentialType(credType)).
		SetCiphertext(ciphertext).
		SetNonce(nonce).
		Save(ctx)
	return err
}

// buildPrompt mirrors pkg/agentrunner.gatherContext's shape (issue
// summary, current column, recent chat) without dev_fail_count, a
// word-budget truncation or credential decryption; PM does not need site
// credentials to converse with the customer.
func (r *Runner) buildPrompt(ctx context.Context, tx *ent.Tx, iss *ent.Issue) (string, error) {
	messages, err := tx.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(iss.ID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		Limit(pmChatDepth).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("loading chat history: %w", err)
	}

	var history []string
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		history = append(history, fmt.Sprintf("%s: %s", msg.Author, msg.Body))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ticket #%d: %s\n\n", iss.TicketNumber, iss.Title)
	fmt.Fprintf(&b, "Description:\n%s\n\n", iss.Description)
	fmt.Fprintf(&b, "Current column: %s\n\n", iss.KanbanColumn)
	if len(history) > 0 {
		fmt.Fprintf(&b, "Recent conversation:\n%s\n\n", strings.Join(history, "\n"))
	}
	b.WriteString("Reply to the customer. Embed any of ticket_action, ticket_confirmed, update_description, save_credential as flat JSON objects where needed; all other text is shown to the customer verbatim.\n")
	return b.String(), nil
}

package services

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/agentaction"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/pkg/realtime"
)

// IssueService creates and reads tickets. Column changes never happen here
// — they are pkg/statemachine.Apply's exclusive responsibility, invoked by
// pkg/api's transition handlers and the agent runners directly against an
// *ent.Tx.
type IssueService struct {
	client *ent.Client
	db     *stdsql.DB // shared pool, used only for the ticket-number sequence allocation
}

// NewIssueService builds an IssueService. db must be the same *sql.DB
// backing client (pkg/database.Client.DB()).
func NewIssueService(client *ent.Client, db *stdsql.DB) *IssueService {
	return &IssueService{client: client, db: db}
}

// CreateIssueRequest describes a new ticket.
type CreateIssueRequest struct {
	CustomerID  string
	SiteID      string
	Title       string
	Description string
	Priority    string // low, normal, high, urgent; defaults to normal if empty
	IssueType   string // maintenance, site_build
}

// CreateIssue allocates the next per-tenant ticket number and creates the
// issue in the triage column, the pipeline's single entry point.
func (s *IssueService) CreateIssue(ctx context.Context, req CreateIssueRequest) (*ent.Issue, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if req.IssueType == "" {
		return nil, NewValidationError("issue_type", "must not be empty")
	}

	ticketNumber, err := s.nextTicketNumber(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("allocating ticket number: %w", err)
	}

	builder := s.client.Issue.Create().
		SetID(uuid.NewString()).
		SetSiteID(req.SiteID).
		SetCustomerID(req.CustomerID).
		SetTicketNumber(ticketNumber).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetIssueType(issue.IssueType(req.IssueType))
	if req.Priority != "" {
		builder = builder.SetPriority(issue.Priority(req.Priority))
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}
	return created, nil
}

// nextTicketNumber atomically allocates the next value of customerID's
// per-tenant sequence. Allocated outside the issue-creation transaction:
// tickets need only be unique and monotonic per customer, not gapless, so
// a failed issue insert after a successful allocation simply burns a
// number rather than requiring a cross-transaction rollback.
func (s *IssueService) nextTicketNumber(ctx context.Context, customerID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning sequence transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO customer_ticket_sequences (customer_id, last_value) VALUES ($1, 0)
		ON CONFLICT (customer_id) DO NOTHING`, customerID); err != nil {
		return 0, fmt.Errorf("ensuring sequence row: %w", err)
	}

	var next int64
	if err := tx.QueryRowContext(ctx,
		`UPDATE customer_ticket_sequences SET last_value = last_value + 1
		WHERE customer_id = $1 RETURNING last_value`, customerID).Scan(&next); err != nil {
		return 0, fmt.Errorf("incrementing sequence: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing sequence allocation: %w", err)
	}
	return next, nil
}

// GetIssue loads an issue scoped to customerID, returning ErrNotFound for
// another tenant's ticket rather than leaking its existence.
func (s *IssueService) GetIssue(ctx context.Context, customerID, issueID string) (*ent.Issue, error) {
	found, err := s.client.Issue.Query().
		Where(issue.IDEQ(issueID), issue.CustomerIDEQ(customerID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading issue %s: %w", issueID, err)
	}
	return found, nil
}

// ListIssuesForSite returns every issue under siteID for customerID, newest
// first.
func (s *IssueService) ListIssuesForSite(ctx context.Context, customerID, siteID string) ([]*ent.Issue, error) {
	issues, err := s.client.Issue.Query().
		Where(issue.SiteIDEQ(siteID), issue.CustomerIDEQ(customerID)).
		Order(ent.Desc(issue.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing issues for site %s: %w", siteID, err)
	}
	return issues, nil
}

// Owns reports whether issueID belongs to customerID, used by
// pkg/realtime.OwnershipVerifier before a WebSocket subscription is
// accepted.
func (s *IssueService) Owns(ctx context.Context, customerID, issueID string) (bool, error) {
	count, err := s.client.Issue.Query().
		Where(issue.IDEQ(issueID), issue.CustomerIDEQ(customerID)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("checking issue ownership: %w", err)
	}
	return count > 0, nil
}

// Snapshot builds the initial state pkg/realtime sends a client right after
// it subscribes.
func (s *IssueService) Snapshot(ctx context.Context, issueID string) (*realtime.IssueSnapshot, error) {
	iss, err := s.client.Issue.Get(ctx, issueID)
	if err != nil {
		return nil, fmt.Errorf("loading issue %s: %w", issueID, err)
	}
	actionCount, err := s.client.AgentAction.Query().
		Where(agentaction.IssueIDEQ(issueID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting agent actions for issue %s: %w", issueID, err)
	}
	return &realtime.IssueSnapshot{
		IssueID:      iss.ID,
		KanbanColumn: string(iss.KanbanColumn),
		LegacyStatus: string(iss.LegacyStatus),
		Confidence:   iss.ConfidenceScore,
		ActionCount:  actionCount,
	}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/tickettransition"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// TransitionService is the customer-facing entry point into
// pkg/statemachine.Apply: it opens the transaction, applies the requested
// column change, and commits, the same three-step shape pkg/callback and
// pkg/agentrunner use internally.
type TransitionService struct {
	client     *ent.Client
	dispatcher statemachine.Dispatcher
	publisher  statemachine.EventPublisher
}

// NewTransitionService builds a TransitionService.
func NewTransitionService(client *ent.Client, dispatcher statemachine.Dispatcher, publisher statemachine.EventPublisher) *TransitionService {
	return &TransitionService{client: client, dispatcher: dispatcher, publisher: publisher}
}

// Apply runs one customer- or pm_agent-initiated transition end to end.
func (s *TransitionService) Apply(ctx context.Context, issueID string, actor statemachine.Actor, to statemachine.Column, note string) (*statemachine.Result, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := statemachine.Apply(ctx, tx, s.dispatcher, s.publisher, issueID, actor, to, note)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transition: %w", err)
	}
	return result, nil
}

// ListTransitions returns the audited column-change history for issueID,
// oldest first (spec ordering guarantee (a)).
func (s *TransitionService) ListTransitions(ctx context.Context, issueID string) ([]*ent.TicketTransition, error) {
	transitions, err := s.client.TicketTransition.Query().
		Where(tickettransition.IssueIDEQ(issueID)).
		Order(ent.Asc(tickettransition.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transitions for issue %s: %w", issueID, err)
	}
	return transitions, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/agentaction"
)

// AgentActionService reads AgentRunner invocation history. Rows are
// written by pkg/agentrunner, not here: a run's row is created as started
// in the run's entry transaction and marked failed if the spawn fails, and
// a run whose context gathering fails gets a row written directly as
// failed. Nothing in this module sets a row to completed.
type AgentActionService struct {
	client *ent.Client
}

// NewAgentActionService builds an AgentActionService.
func NewAgentActionService(client *ent.Client) *AgentActionService {
	return &AgentActionService{client: client}
}

// ListActions returns every AgentAction recorded for issueID, oldest first.
func (s *AgentActionService) ListActions(ctx context.Context, issueID string) ([]*ent.AgentAction, error) {
	actions, err := s.client.AgentAction.Query().
		Where(agentaction.IssueIDEQ(issueID)).
		Order(ent.Asc(agentaction.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing agent actions for issue %s: %w", issueID, err)
	}
	return actions, nil
}

// CountActions returns the number of AgentAction rows for issueID, used by
// the WebSocket connect-time snapshot.
func (s *AgentActionService) CountActions(ctx context.Context, issueID string) (int, error) {
	count, err := s.client.AgentAction.Query().
		Where(agentaction.IssueIDEQ(issueID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting agent actions for issue %s: %w", issueID, err)
	}
	return count, nil
}

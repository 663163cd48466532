package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/pkg/events"
)

// PMRunner is the subset of pkg/pmactions.Runner the ChatMessageService
// needs: every customer-authored message triggers pm_agent synchronously,
// not via the Dispatcher, since pm_agent's reply must be available before
// the HTTP response returns.
type PMRunner interface {
	Run(ctx context.Context, issueID string) error
}

// ChatMessageService appends to an issue's conversation thread and
// publishes the resulting message event for WebSocket fan-out.
type ChatMessageService struct {
	client    *ent.Client
	publisher *events.Publisher
	pmRunner  PMRunner
}

// NewChatMessageService builds a ChatMessageService.
func NewChatMessageService(client *ent.Client, publisher *events.Publisher, pmRunner PMRunner) *ChatMessageService {
	return &ChatMessageService{client: client, publisher: publisher, pmRunner: pmRunner}
}

// PostCustomerMessage appends a customer-authored message, publishes it,
// then runs pm_agent synchronously so its reply (if any) is reflected by
// the time this call returns.
func (s *ChatMessageService) PostCustomerMessage(ctx context.Context, issueID, body string) (*ent.ChatMessage, error) {
	if body == "" {
		return nil, NewValidationError("body", "must not be empty")
	}

	msg, err := s.append(ctx, issueID, chatmessage.AuthorCustomer, body)
	if err != nil {
		return nil, err
	}

	if err := s.pmRunner.Run(ctx, issueID); err != nil {
		return nil, fmt.Errorf("running pm_agent after customer message: %w", err)
	}
	return msg, nil
}

// append creates the ChatMessage row and publishes its event. Its only
// caller is PostCustomerMessage; pkg/agentrunner, pkg/pmactions,
// pkg/callback and pkg/stall insert their chat messages directly rather
// than through this service.
func (s *ChatMessageService) append(ctx context.Context, issueID string, author chatmessage.Author, body string) (*ent.ChatMessage, error) {
	msg, err := s.client.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetIssueID(issueID).
		SetAuthor(author).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("posting chat message: %w", err)
	}

	if err := s.publisher.PublishMessage(ctx, issueID, events.MessagePayload{
		MessageID: msg.ID,
		Author:    string(author),
		Body:      body,
	}); err != nil {
		return nil, fmt.Errorf("publishing message event: %w", err)
	}
	return msg, nil
}

// ListMessages returns an issue's conversation thread, oldest first.
func (s *ChatMessageService) ListMessages(ctx context.Context, issueID string) ([]*ent.ChatMessage, error) {
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(issueID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages for issue %s: %w", issueID, err)
	}
	return messages, nil
}

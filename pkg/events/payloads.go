package events

// IssueUpdatedPayload is the payload for issue_updated events. Published
// after every successful kanban transition; carries the new column and
// legacy-status projection so a subscribed board doesn't need a round trip
// to re-fetch the issue just to re-render its card.
type IssueUpdatedPayload struct {
	Type         string  `json:"type"` // always EventTypeIssueUpdated
	IssueID      string  `json:"issue_id"`
	KanbanColumn string  `json:"kanban_column"`
	LegacyStatus string  `json:"legacy_status"`
	DevFailCount int     `json:"dev_fail_count"`
	Confidence   float64 `json:"confidence_score"`
	Timestamp    string  `json:"timestamp"` // RFC3339Nano
}

// MessagePayload is the payload for message events. Published when
// pkg/services.ChatMessageService appends a chat message to an issue.
type MessagePayload struct {
	Type      string `json:"type"` // always EventTypeMessage
	IssueID   string `json:"issue_id"`
	MessageID string `json:"message_id"`
	Author    string `json:"author"` // customer, dev_agent, qa_agent, tech_lead, pm_agent, system
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// ActionEventPayload is the payload for action_started/action_completed/
// action_failed events, one per AgentAction lifecycle transition.
type ActionEventPayload struct {
	Type         string `json:"type"` // one of the action_* event types
	IssueID      string `json:"issue_id"`
	ActionID     string `json:"action_id"`
	Role         string `json:"role"` // dev_agent, qa_agent, tech_lead
	ErrorSummary string `json:"error_summary,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

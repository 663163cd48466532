// Package stall implements the StallController: a 5-minute
// cron sweep over issues sitting in a working column whose activity has
// gone quiet, applying the first matching escalation tier.
package stall

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/tickettransition"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/metrics"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
)

// sweepSchedule is the fixed 5-minute cron expression the stall sweep runs on.
const sweepSchedule = "*/5 * * * *"

// Dispatcher is the enqueue surface the controller needs: the tx-scoped
// form statemachine.Apply consumes plus direct submission for pickup and
// escalation jobs outside any transaction.
type Dispatcher interface {
	statemachine.Dispatcher
	Enqueue(ctx context.Context, queue config.QueueName, name string, args map[string]interface{}) (string, error)
}

// Controller runs the periodic stall sweep.
type Controller struct {
	client     *ent.Client
	dispatcher Dispatcher
	publisher  statemachine.EventPublisher
	config     *config.StallConfig
	cron       *cron.Cron
}

// New builds a Controller. Start must be called to begin the sweep.
func New(client *ent.Client, dispatcher Dispatcher, publisher statemachine.EventPublisher, cfg *config.StallConfig) *Controller {
	return &Controller{
		client:     client,
		dispatcher: dispatcher,
		publisher:  publisher,
		config:     cfg,
		cron:       cron.New(),
	}
}

// Start schedules the sweep and returns immediately; the cron scheduler
// runs sweeps on its own goroutine.
func (c *Controller) Start() error {
	_, err := c.cron.AddFunc(sweepSchedule, func() {
		ctx := context.Background()
		if err := c.Sweep(ctx); err != nil {
			slog.Error("stall sweep failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling stall sweep: %w", err)
	}
	c.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for any in-flight sweep to finish.
func (c *Controller) Stop() {
	<-c.cron.Stop().Done()
}

// candidateColumns are the kanban columns the sweep examines: every
// column work can stall in.
var candidateColumns = []issue.KanbanColumn{
	issue.KanbanColumn(statemachine.ColumnTodo),
	issue.KanbanColumn(statemachine.ColumnReadyForQA),
	issue.KanbanColumn(statemachine.ColumnInProgress),
	issue.KanbanColumn(statemachine.ColumnInQA),
}

// Sweep examines every eligible issue once and applies the first matching
// tier. Errors on one issue are logged and do not stop the sweep.
func (c *Controller) Sweep(ctx context.Context) error {
	sweepStart := time.Now()
	defer func() {
		metrics.RecordStallSweepDuration(time.Since(sweepStart).Seconds())
	}()
	now := time.Now()

	issues, err := c.client.Issue.Query().
		Where(
			issue.KanbanColumnIn(candidateColumns...),
			issue.Or(
				issue.StallCheckAtIsNil(),
				issue.StallCheckAtLTE(now),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying stall candidates: %w", err)
	}

	for _, iss := range issues {
		if err := c.processOne(ctx, iss, now); err != nil {
			slog.Error("processing stall candidate", "issue_id", iss.ID, "error", err)
		}
	}
	return nil
}

// processOne computes last_activity and applies the first matching tier,
// evaluated from most to least severe so overlapping age thresholds for
// in_progress/in_qa (tier 2b/2c's 20-minute floor is a strict subset of
// tier 3a/3b's windows) resolve to the most specific applicable tier
// rather than whichever tier a naive top-to-bottom scan would hit first.
func (c *Controller) processOne(ctx context.Context, iss *ent.Issue, now time.Time) error {
	lastActivity, err := c.lastActivity(ctx, iss)
	if err != nil {
		return fmt.Errorf("computing last activity: %w", err)
	}
	age := now.Sub(lastActivity)
	col := statemachine.Column(iss.KanbanColumn)

	matched := decideTier(col, age, c.config)
	if matched != tierNone {
		metrics.RecordStallSweepAction(matched.String())
	}

	switch matched {
	case tierPickupDev:
		return c.tierPickup(ctx, iss, now, "run_dev_agent")
	case tierPickupQA:
		return c.tierPickup(ctx, iss, now, "run_qa_agent")
	case tierRevertTier:
		return c.tierRevert(ctx, iss, col)
	case tierWarnTier:
		return c.tierWarn(ctx, iss, now)
	case tierEscalateTier:
		return c.tierEscalate(ctx, iss, now)
	}
	return nil
}

// tier identifies which stall-recovery rule matched, or tierNone.
type tier int

const (
	tierNone tier = iota
	tierPickupDev
	tierPickupQA
	tierRevertTier
	tierWarnTier
	tierEscalateTier
)

// String returns the metrics-label form of a tier.
func (t tier) String() string {
	switch t {
	case tierPickupDev:
		return "pickup_dev"
	case tierPickupQA:
		return "pickup_qa"
	case tierRevertTier:
		return "revert"
	case tierWarnTier:
		return "warn"
	case tierEscalateTier:
		return "escalate"
	default:
		return "none"
	}
}

// decideTier picks the first matching tier for col/age, evaluated from most
// to least severe (see processOne's comment on why severity order, not
// table order, disambiguates overlapping in_progress/in_qa windows).
func decideTier(col statemachine.Column, age time.Duration, cfg *config.StallConfig) tier {
	switch col {
	case statemachine.ColumnTodo:
		if age > cfg.PickupThreshold {
			return tierPickupDev
		}
	case statemachine.ColumnReadyForQA:
		if age > cfg.PickupThreshold {
			return tierPickupQA
		}
	case statemachine.ColumnInProgress, statemachine.ColumnInQA:
		switch {
		case age >= cfg.EscalateThreshold:
			return tierEscalateTier
		case age > cfg.WarnThreshold:
			return tierWarnTier
		case age > cfg.StuckThreshold:
			return tierRevertTier
		}
	}
	return tierNone
}

// lastActivity is max(last transition time, last chat time, created_at).
func (c *Controller) lastActivity(ctx context.Context, iss *ent.Issue) (time.Time, error) {
	latest := iss.CreatedAt

	transition, err := c.client.TicketTransition.Query().
		Where(tickettransition.IssueIDEQ(iss.ID)).
		Order(ent.Desc(tickettransition.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return latest, err
	}
	if transition != nil && transition.CreatedAt.After(latest) {
		latest = transition.CreatedAt
	}

	msg, err := c.client.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(iss.ID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return latest, err
	}
	if msg != nil && msg.CreatedAt.After(latest) {
		latest = msg.CreatedAt
	}

	return latest, nil
}

// tierPickup is tiers 1/2: (re-)enqueue the expected runner and push
// stall_check_at out by 15 minutes.
func (c *Controller) tierPickup(ctx context.Context, iss *ent.Issue, now time.Time, jobName string) error {
	if _, err := c.dispatcher.Enqueue(ctx, config.QueueBackend, jobName, map[string]interface{}{"issue_id": iss.ID}); err != nil {
		return err
	}
	_, err := c.client.Issue.UpdateOneID(iss.ID).
		SetStallCheckAt(now.Add(15 * time.Minute)).
		Save(ctx)
	return err
}

// tierRevert is tiers 2b/2c: revert in_qa/in_progress back to the prior
// column under the system actor and post a retry notice. No explicit
// stall_check_at is set — the revert's own TicketTransition row becomes
// the new last_activity, naturally deferring the next match by
// PickupThreshold.
func (c *Controller) tierRevert(ctx context.Context, iss *ent.Issue, col statemachine.Column) error {
	revertTo := statemachine.ColumnTodo
	note := "stalled, retrying"
	if col == statemachine.ColumnInQA {
		revertTo = statemachine.ColumnReadyForQA
		note = "stalled, retrying QA"
	}

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := statemachine.Apply(ctx, tx, c.dispatcher, c.publisher, iss.ID, statemachine.ActorSystem, revertTo, note); err != nil {
		if _, ok := err.(*statemachine.IdempotencyNoop); !ok {
			return err
		}
	}

	if _, err := tx.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetIssueID(iss.ID).
		SetAuthor(chatmessage.AuthorSystem).
		SetBody(note).
		Save(ctx); err != nil {
		return err
	}

	return tx.Commit()
}

// tierWarn is tier 3a: a user-visible stall warning, stall_check_at pushed
// 30 minutes out.
func (c *Controller) tierWarn(ctx context.Context, iss *ent.Issue, now time.Time) error {
	if _, err := c.client.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetIssueID(iss.ID).
		SetAuthor(chatmessage.AuthorSystem).
		SetBody("this ticket has been stuck for a while; still working on it").
		Save(ctx); err != nil {
		return err
	}
	_, err := c.client.Issue.UpdateOneID(iss.ID).
		SetStallCheckAt(now.Add(30 * time.Minute)).
		Save(ctx)
	return err
}

// tierEscalate is tier 3b: enqueue tech_lead, push stall_check_at 4 hours
// out, post an escalation notice.
func (c *Controller) tierEscalate(ctx context.Context, iss *ent.Issue, now time.Time) error {
	if _, err := c.dispatcher.Enqueue(ctx, config.QueueBackend, "run_tech_lead", map[string]interface{}{"issue_id": iss.ID}); err != nil {
		return err
	}
	if _, err := c.client.ChatMessage.Create().
		SetID(uuid.NewString()).
		SetIssueID(iss.ID).
		SetAuthor(chatmessage.AuthorSystem).
		SetBody("escalating to tech lead after prolonged inactivity").
		Save(ctx); err != nil {
		return err
	}
	_, err := c.client.Issue.UpdateOneID(iss.ID).
		SetStallCheckAt(now.Add(4 * time.Hour)).
		Save(ctx)
	return err
}

package agentrunner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/agentaction"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/tickettransition"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
	"github.com/ticketforge/kanbanengine/pkg/events"
	"github.com/ticketforge/kanbanengine/pkg/lock"
	"github.com/ticketforge/kanbanengine/pkg/spawner"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

type recordingDispatcher struct {
	enqueued []string
}

func (d *recordingDispatcher) EnqueueTx(ctx context.Context, tx *ent.Tx, queue config.QueueName, name string, args map[string]interface{}) (string, error) {
	d.enqueued = append(d.enqueued, name)
	return "job-" + name, nil
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) PublishIssueUpdated(ctx context.Context, issueID string, payload events.IssueUpdatedPayload) error {
	p.published = append(p.published, issueID)
	return nil
}

type recordingSpawner struct {
	inputs []spawner.TaskInput
	err    error
}

func (s *recordingSpawner) Spawn(ctx context.Context, input spawner.TaskInput) (*spawner.SessionHandle, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.inputs = append(s.inputs, input)
	return &spawner.SessionHandle{RunID: "run-1", ChildSessionKey: "sess-1"}, nil
}

// runnerFixture wires a Runner against a real Postgres schema and a
// miniredis-backed lock service, with recording fakes for everything that
// leaves the process.
type runnerFixture struct {
	client     *ent.Client
	locker     *lock.Service
	dispatcher *recordingDispatcher
	spawn      *recordingSpawner
	runner     *Runner
	issueID    string
	siteID     string
}

func newRunnerFixture(t *testing.T, startColumn statemachine.Column) *runnerFixture {
	t.Helper()
	ctx := context.Background()
	dbClient := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	locker := lock.NewService(redisClient, "test-holder")

	cust, err := dbClient.Client.Customer.Create().
		SetID(uuid.NewString()).
		SetEmail("owner@example.com").
		Save(ctx)
	require.NoError(t, err)
	site, err := dbClient.Client.Site.Create().
		SetID(uuid.NewString()).
		SetCustomerID(cust.ID).
		SetURL("https://shop.example").
		SetName("Shop").
		Save(ctx)
	require.NoError(t, err)
	iss, err := dbClient.Client.Issue.Create().
		SetID(uuid.NewString()).
		SetSiteID(site.ID).
		SetCustomerID(cust.ID).
		SetTicketNumber(1).
		SetTitle("Checkout button broken").
		SetDescription("Clicking pay does nothing on the cart page").
		SetIssueType(issue.IssueTypeMaintenance).
		SetKanbanColumn(issue.KanbanColumn(startColumn)).
		SetLegacyStatus(issue.LegacyStatus(statemachine.ProjectLegacyStatus(startColumn))).
		Save(ctx)
	require.NoError(t, err)

	dispatcher := &recordingDispatcher{}
	spawn := &recordingSpawner{}
	cfg := &config.Config{
		Roles:             &config.RoleConfig{Models: map[config.Role]string{config.RoleDev: "claude-default", config.RoleQA: "claude-default", config.RoleTechLead: "claude-default"}},
		AgentRunTimeout:   900 * time.Second,
		SpawnCallbackBase: "http://engine.internal:8080",
		InternalToken:     "internal-token",
	}

	return &runnerFixture{
		client:     dbClient.Client,
		locker:     locker,
		dispatcher: dispatcher,
		spawn:      spawn,
		runner:     New(dbClient.Client, locker, dispatcher, &recordingPublisher{}, spawn, cfg, crypto.DeriveKey("test-master-key")),
		issueID:    iss.ID,
		siteID:     site.ID,
	}
}

func (f *runnerFixture) column(t *testing.T) string {
	t.Helper()
	iss, err := f.client.Issue.Get(context.Background(), f.issueID)
	require.NoError(t, err)
	return string(iss.KanbanColumn)
}

func (f *runnerFixture) transitions(t *testing.T) []*ent.TicketTransition {
	t.Helper()
	rows, err := f.client.TicketTransition.Query().
		Where(tickettransition.IssueIDEQ(f.issueID)).
		Order(ent.Asc(tickettransition.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func (f *runnerFixture) chatBodies(t *testing.T) []string {
	t.Helper()
	msgs, err := f.client.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(f.issueID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	bodies := make([]string, len(msgs))
	for i, m := range msgs {
		bodies[i] = m.Body
	}
	return bodies
}

func TestRunnerRun_DevSpawnHappyPath(t *testing.T) {
	f := newRunnerFixture(t, statemachine.ColumnTodo)
	ctx := context.Background()

	require.NoError(t, f.runner.Run(ctx, f.issueID, config.RoleDev))

	assert.Equal(t, "in_progress", f.column(t))

	rows := f.transitions(t)
	require.Len(t, rows, 1)
	assert.Equal(t, "todo", string(rows[0].FromColumn))
	assert.Equal(t, "in_progress", string(rows[0].ToColumn))
	assert.Equal(t, "dev_agent", string(rows[0].Actor))

	bodies := f.chatBodies(t)
	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[0], "dev_agent starting")
	assert.Contains(t, bodies[1], "sess-1")

	actions, err := f.client.AgentAction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, agentaction.StatusStarted, actions[0].Status)

	require.Len(t, f.spawn.inputs, 1)
	prompt := f.spawn.inputs[0].Task
	assert.Contains(t, prompt, "Checkout button broken")
	assert.Contains(t, prompt, "/internal/agent-result")
	assert.Equal(t, "keep", f.spawn.inputs[0].Cleanup)

	// The lock stays held until the completion callback releases it.
	key := lock.IssueRoleKey(f.issueID, string(config.RoleDev))
	assert.False(t, f.locker.TryAcquire(ctx, key, time.Minute))
}

func TestRunnerRun_EntryColumnMismatchIsNoop(t *testing.T) {
	f := newRunnerFixture(t, statemachine.ColumnTriage)
	ctx := context.Background()

	require.NoError(t, f.runner.Run(ctx, f.issueID, config.RoleDev))

	assert.Equal(t, "triage", f.column(t))
	assert.Empty(t, f.transitions(t))
	assert.Empty(t, f.chatBodies(t))
	assert.Empty(t, f.spawn.inputs)

	// The stale job released its lock on the way out.
	key := lock.IssueRoleKey(f.issueID, string(config.RoleDev))
	assert.True(t, f.locker.TryAcquire(ctx, key, time.Minute))
}

func TestRunnerRun_DuplicateDispatchBlockedByLock(t *testing.T) {
	f := newRunnerFixture(t, statemachine.ColumnTodo)
	ctx := context.Background()

	key := lock.IssueRoleKey(f.issueID, string(config.RoleDev))
	require.True(t, f.locker.TryAcquire(ctx, key, time.Minute))

	err := f.runner.Run(ctx, f.issueID, config.RoleDev)
	var held *ErrLockHeld
	require.ErrorAs(t, err, &held)

	assert.Equal(t, "todo", f.column(t))
	assert.Empty(t, f.transitions(t))
	assert.Empty(t, f.chatBodies(t))
	assert.Empty(t, f.spawn.inputs)
}

func TestRunnerRun_GatherContextFailureRollsBackEntry(t *testing.T) {
	f := newRunnerFixture(t, statemachine.ColumnTodo)
	ctx := context.Background()

	// A credential whose ciphertext cannot be decrypted makes step 4 fail
	// after the entry transition has been written to the open tx.
	_, err := f.client.SiteCredential.Create().
		SetID(uuid.NewString()).
		SetSiteID(f.siteID).
		SetCredentialType("wp_admin").
		SetCiphertext([]byte("not-a-real-ciphertext")).
		SetNonce(make([]byte, 12)).
		Save(ctx)
	require.NoError(t, err)

	err = f.runner.Run(ctx, f.issueID, config.RoleDev)
	require.Error(t, err)

	// The entry transition never committed: column and audit log unchanged.
	assert.Equal(t, "todo", f.column(t))
	assert.Empty(t, f.transitions(t))

	actions, err := f.client.AgentAction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, agentaction.StatusFailed, actions[0].Status)
	require.NotNil(t, actions[0].ErrorSummary)
	assert.Contains(t, *actions[0].ErrorSummary, "decrypting credential")

	bodies := f.chatBodies(t)
	require.Len(t, bodies, 1)
	assert.True(t, strings.HasPrefix(bodies[0], "❌"))
	assert.NotContains(t, bodies[0], "decrypt")

	key := lock.IssueRoleKey(f.issueID, string(config.RoleDev))
	assert.True(t, f.locker.TryAcquire(ctx, key, time.Minute))
}

func TestRunnerRun_SpawnFailureRevertsWithoutLeakingError(t *testing.T) {
	f := newRunnerFixture(t, statemachine.ColumnTodo)
	ctx := context.Background()

	f.spawn.err = &spawner.TransientError{Cause: errors.New("dial tcp 10.0.0.9:443: connection refused")}

	err := f.runner.Run(ctx, f.issueID, config.RoleDev)
	require.Error(t, err)

	assert.Equal(t, "todo", f.column(t))

	// Entry plus system revert, both audited.
	rows := f.transitions(t)
	require.Len(t, rows, 2)
	assert.Equal(t, "in_progress", string(rows[0].ToColumn))
	assert.Equal(t, "todo", string(rows[1].ToColumn))
	assert.Equal(t, "system", string(rows[1].Actor))

	// The revert does not re-enqueue dev; the stall sweep owns the retry.
	assert.NotContains(t, f.dispatcher.enqueued, "run_dev_agent")

	actions, err := f.client.AgentAction.Query().Where(agentaction.StatusEQ(agentaction.StatusFailed)).All(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].ErrorSummary)
	assert.Contains(t, *actions[0].ErrorSummary, "connection refused")

	for _, body := range f.chatBodies(t) {
		assert.NotContains(t, body, "connection refused")
	}
	var failureNotices int
	for _, body := range f.chatBodies(t) {
		if strings.HasPrefix(body, "❌") {
			failureNotices++
		}
	}
	assert.Equal(t, 1, failureNotices)

	key := lock.IssueRoleKey(f.issueID, string(config.RoleDev))
	assert.True(t, f.locker.TryAcquire(ctx, key, time.Minute))
}

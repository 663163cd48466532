package pmactions

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/ent"
	"github.com/ticketforge/kanbanengine/ent/chatmessage"
	"github.com/ticketforge/kanbanengine/ent/issue"
	"github.com/ticketforge/kanbanengine/ent/sitecredential"
	"github.com/ticketforge/kanbanengine/ent/tickettransition"
	"github.com/ticketforge/kanbanengine/pkg/config"
	"github.com/ticketforge/kanbanengine/pkg/crypto"
	"github.com/ticketforge/kanbanengine/pkg/events"
	"github.com/ticketforge/kanbanengine/pkg/statemachine"
	testdb "github.com/ticketforge/kanbanengine/test/database"
)

type cannedGateway struct {
	reply string
	err   error
	calls int
}

func (g *cannedGateway) Complete(ctx context.Context, model, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type recordingDispatcher struct {
	enqueued []string
}

func (d *recordingDispatcher) EnqueueTx(ctx context.Context, tx *ent.Tx, queue config.QueueName, name string, args map[string]interface{}) (string, error) {
	d.enqueued = append(d.enqueued, name)
	return "job-" + name, nil
}

type recordingPublisher struct{}

func (recordingPublisher) PublishIssueUpdated(ctx context.Context, issueID string, payload events.IssueUpdatedPayload) error {
	return nil
}

// pmFixture wires a pm_agent Runner against a real Postgres schema with a
// canned Gateway reply.
type pmFixture struct {
	client  *ent.Client
	gateway *cannedGateway
	key     []byte
	issueID string
	siteID  string
}

func newPMFixture(t *testing.T, startColumn statemachine.Column, reply string) (*pmFixture, *Runner) {
	t.Helper()
	ctx := context.Background()
	dbClient := testdb.NewTestClient(t)

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
		SetTitle("Images not loading").
		SetDescription("Product photos 404 on the landing page").
		SetIssueType(issue.IssueTypeMaintenance).
		SetKanbanColumn(issue.KanbanColumn(startColumn)).
		SetLegacyStatus(issue.LegacyStatus(statemachine.ProjectLegacyStatus(startColumn))).
		Save(ctx)
	require.NoError(t, err)

	gateway := &cannedGateway{reply: reply}
	key := crypto.DeriveKey("test-master-key")
	cfg := &config.Config{
		Roles: &config.RoleConfig{Models: map[config.Role]string{config.RolePM: "claude-default"}},
	}
	runner := New(dbClient.Client, gateway, &recordingDispatcher{}, recordingPublisher{}, cfg, key)

	return &pmFixture{
		client:  dbClient.Client,
		gateway: gateway,
		key:     key,
		issueID: iss.ID,
		siteID:  site.ID,
	}, runner
}

func TestPMRun_TicketConfirmedAdvancesTriage(t *testing.T) {
	f, runner := newPMFixture(t, statemachine.ColumnTriage,
		`Thanks, I have everything I need. I'll get this scheduled. {"marker":"ticket_confirmed"}`)
	ctx := context.Background()

	require.NoError(t, runner.Run(ctx, f.issueID))

	iss, err := f.client.Issue.Get(ctx, f.issueID)
	require.NoError(t, err)
	assert.Equal(t, "ready_for_uat_approval", string(iss.KanbanColumn))
	assert.Equal(t, "open", string(iss.LegacyStatus))

	rows, err := f.client.TicketTransition.Query().
		Where(tickettransition.IssueIDEQ(f.issueID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "pm_agent", string(rows[0].Actor))

	// The visible reply is posted with the marker JSON stripped out.
	msgs, err := f.client.ChatMessage.Query().
		Where(chatmessage.IssueIDEQ(f.issueID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, chatmessage.AuthorPmAgent, msgs[0].Author)
	assert.Contains(t, msgs[0].Body, "get this scheduled")
	assert.NotContains(t, msgs[0].Body, "marker")
	assert.NotContains(t, msgs[0].Body, "{")
}

func TestPMRun_UpdateDescriptionAppends(t *testing.T) {
	f, runner := newPMFixture(t, statemachine.ColumnTriage,
		`Got it, noting that down. {"marker":"update_description","text":"Customer adds: only happens on mobile Safari"}`)
	ctx := context.Background()

	require.NoError(t, runner.Run(ctx, f.issueID))

	iss, err := f.client.Issue.Get(ctx, f.issueID)
	require.NoError(t, err)
	assert.Contains(t, iss.Description, "Product photos 404")
	assert.Contains(t, iss.Description, "only happens on mobile Safari")
	assert.Equal(t, "triage", string(iss.KanbanColumn))
}

func TestPMRun_SaveCredentialEncryptsAtRest(t *testing.T) {
	f, runner := newPMFixture(t, statemachine.ColumnTriage, "")
	f.gateway.reply = `Stored, thank you. {"marker":"save_credential","site_id":"` + f.siteID + `","credential_type":"wp_admin","value":"hunter2"}`
	ctx := context.Background()

	require.NoError(t, runner.Run(ctx, f.issueID))

	creds, err := f.client.SiteCredential.Query().
		Where(sitecredential.SiteIDEQ(f.siteID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, sitecredential.CredentialTypeWpAdmin, creds[0].CredentialType)
	assert.NotContains(t, string(creds[0].Ciphertext), "hunter2")

	subKey, err := crypto.DeriveCredentialKey(f.key, creds[0].ID)
	require.NoError(t, err)
	plaintext, err := crypto.Decrypt(subKey, creds[0].Nonce, creds[0].Ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(plaintext))
}

func TestPMRun_TerminalColumnSkipsGateway(t *testing.T) {
	f, runner := newPMFixture(t, statemachine.ColumnDismissed, "should never be requested")
	ctx := context.Background()

	require.NoError(t, runner.Run(ctx, f.issueID))

	assert.Equal(t, 0, f.gateway.calls)
	msgs, err := f.client.ChatMessage.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestPMRun_GatewayErrorPropagatesWithoutWrites(t *testing.T) {
	f, runner := newPMFixture(t, statemachine.ColumnTriage, "")
	f.gateway.err = context.DeadlineExceeded
	ctx := context.Background()

	require.Error(t, runner.Run(ctx, f.issueID))

	msgs, err := f.client.ChatMessage.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	rows, err := f.client.TicketTransition.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

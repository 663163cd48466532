package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketforge/kanbanengine/pkg/events"
)

// fakeOwnership implements OwnershipVerifier for tests.
type fakeOwnership struct {
	owns bool
	err  error
}

func (f *fakeOwnership) Owns(_ context.Context, _, _ string) (bool, error) {
	return f.owns, f.err
}

// fakeSnapshots implements SnapshotProvider for tests.
type fakeSnapshots struct {
	snap *IssueSnapshot
	err  error
}

func (f *fakeSnapshots) Snapshot(_ context.Context, issueID string) (*IssueSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snap != nil {
		return f.snap, nil
	}
	return &IssueSnapshot{IssueID: issueID, KanbanColumn: "triage"}, nil
}

// fakeCatchup implements events.CatchupQuerier for tests.
type fakeCatchup struct {
	events []events.CatchupEvent
}

func (f *fakeCatchup) GetCatchupEvents(_ context.Context, _ string, _ time.Time, limit int) ([]events.CatchupEvent, error) {
	if limit > 0 && len(f.events) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

var testUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func setupTestManager(t *testing.T, ownership *fakeOwnership, issueID, customerID string) (*ConnectionManager, *httptest.Server) {
	t.Helper()
	manager := NewConnectionManager(ownership, &fakeSnapshots{}, &fakeCatchup{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		_ = manager.HandleConnection(r.Context(), conn, issueID, customerID, time.Time{})
	}))
	t.Cleanup(server.Close)
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestConnectionManager_SendsSnapshotOnConnect(t *testing.T) {
	_, server := setupTestManager(t, &fakeOwnership{owns: true}, "issue-1", "cust-1")
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connected", msg["type"])
	assert.Equal(t, "issue-1", msg["issue_id"])
	assert.Equal(t, "triage", msg["kanban_column"])
}

func TestConnectionManager_RejectsNonOwner(t *testing.T) {
	_, server := setupTestManager(t, &fakeOwnership{owns: false}, "issue-1", "cust-2")
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}

func TestConnectionManager_ActiveConnectionsAndBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &fakeOwnership{owns: true}, "issue-1", "cust-1")
	conn := connectWS(t, server)

	readJSON(t, conn) // "connected" snapshot

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast(events.IssueChannel("issue-1"), []byte(`{"type":"issue.updated"}`))
	msg := readJSON(t, conn)
	assert.Equal(t, "issue.updated", msg["type"])

	_ = conn.Close()
	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestConnectionManager_BroadcastToUnknownChannelIsNoop(t *testing.T) {
	manager, _ := setupTestManager(t, &fakeOwnership{owns: true}, "issue-1", "cust-1")
	manager.Broadcast("issue:does-not-exist", []byte(`{}`))
}

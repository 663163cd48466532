// Package realtime serves WebSocket subscribers for a single issue's live
// updates: kanban transitions, chat messages, and agent-action lifecycle
// events. It is the client-facing half of pkg/events — NotifyListener feeds
// it NOTIFY payloads via the Broadcaster interface, and ConnectionManager
// fans them out to whichever browser tabs are watching that issue, with
// per-connection issue ownership verification and gorilla/websocket as the
// transport.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ticketforge/kanbanengine/pkg/events"
)

const (
	// pingPeriod is how often the server sends a WebSocket ping to keep
	// intermediaries (load balancers, proxies) from dropping an idle
	// connection, and to detect silently-dead clients.
	pingPeriod = 25 * time.Second

	// pongWait is how long the server waits for a pong (or any other
	// frame) before considering the client gone. Must exceed pingPeriod.
	pongWait = 30 * time.Second

	// writeWait bounds a single WebSocket write.
	writeWait = 10 * time.Second

	catchupLimit = 200
)

// OwnershipVerifier checks that customerID owns issueID, so a connection
// cannot subscribe to another tenant's ticket just by guessing its id.
type OwnershipVerifier interface {
	Owns(ctx context.Context, customerID, issueID string) (bool, error)
}

// IssueSnapshot is the initial state sent to a client right after it
// subscribes, so the UI can render immediately without a separate REST call.
type IssueSnapshot struct {
	IssueID      string  `json:"issue_id"`
	KanbanColumn string  `json:"kanban_column"`
	LegacyStatus string  `json:"legacy_status"`
	Confidence   float64 `json:"confidence_score"`
	ActionCount  int     `json:"action_count"`
}

// SnapshotProvider loads the IssueSnapshot delivered on connect.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, issueID string) (*IssueSnapshot, error)
}

// ConnectionManager manages WebSocket connections and their per-issue
// channel subscriptions. Each process (pod) has one ConnectionManager.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	channels  map[string]map[string]bool // channel -> set of connection ids
	channelMu sync.RWMutex

	ownership      OwnershipVerifier
	snapshots      SnapshotProvider
	catchupQuerier events.CatchupQuerier

	listener   *events.NotifyListener
	listenerMu sync.RWMutex
}

// Connection represents a single subscribed WebSocket client, scoped to one
// issue for the lifetime of the connection.
//
// subscriptions is accessed without a lock: all reads/writes happen on the
// single goroutine that owns this connection (HandleConnection's read loop
// and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	writeMu       sync.Mutex // gorilla/websocket allows only one writer at a time
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(ownership OwnershipVerifier, snapshots SnapshotProvider, catchupQuerier events.CatchupQuerier) *ConnectionManager {
	return &ConnectionManager{
		connections:    make(map[string]*Connection),
		channels:       make(map[string]map[string]bool),
		ownership:      ownership,
		snapshots:      snapshots,
		catchupQuerier: catchupQuerier,
	}
}

// SetListener wires the NotifyListener used for dynamic LISTEN/UNLISTEN.
// Called once during startup after both components are constructed.
func (m *ConnectionManager) SetListener(l *events.NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection manages the lifecycle of a single WebSocket client
// subscribed to issueID. Called by the WebSocket HTTP handler after upgrade
// and after customerID has been resolved from the request's auth headers.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, issueID, customerID string, after time.Time) error {
	owns, err := m.ownership.Owns(parentCtx, customerID, issueID)
	if err != nil {
		return err
	}
	if !owns {
		_ = conn.WriteJSON(map[string]string{"type": "error", "message": "not authorized for this issue"})
		return conn.Close()
	}

	connID := uuid.NewString()
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	channel := events.IssueChannel(issueID)
	if err := m.subscribe(c, channel); err != nil {
		m.sendJSON(c, map[string]string{"type": "subscription.error", "channel": channel})
		return err
	}

	if snap, err := m.snapshots.Snapshot(ctx, issueID); err != nil {
		slog.Warn("failed to load issue snapshot", "issue_id", issueID, "error", err)
	} else {
		m.sendJSON(c, struct {
			Type string `json:"type"`
			*IssueSnapshot
		}{Type: "connected", IssueSnapshot: snap})
	}

	if !after.IsZero() {
		m.handleCatchup(ctx, c, issueID, after)
	}

	go m.keepalive(c)

	// A client that stops answering pings is dropped once its read
	// deadline lapses; each pong pushes the deadline out again.
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Read loop drains and discards client frames (ping/pong, close) —
	// this gateway is a one-way event firehose, not a chat input channel.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// keepalive pings the client every pingPeriod until the connection closes.
// A write failure (client gone) cancels the connection's context, which
// the caller's blocked ReadMessage will observe as a close.
func (m *ConnectionManager) keepalive(c *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.writeMu.Lock()
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.Conn.WriteMessage(websocket.PingMessage, nil)
			c.writeMu.Unlock()
			if err != nil {
				c.cancel()
				_ = c.Conn.Close()
				return
			}
		}
	}
}

// Broadcast sends an event payload to all connections subscribed to channel.
// Implements pkg/events.Broadcaster.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	m.channelMu.RLock()
	connIDs, ok := m.channels[channel]
	if !ok {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, payload); err != nil {
			slog.Warn("failed to send to WebSocket client", "connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscribe registers a connection for a channel and starts LISTEN if it's
// the first subscriber. LISTEN is synchronous so it completes before
// subscribe returns, closing the gap where an event published between
// snapshot and LISTEN would be lost.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				m.channelMu.Lock()
				delete(m.channels, channel)
				m.channelMu.Unlock()
				return err
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// unsubscribe removes a connection from a channel and UNLISTENs if it was
// the last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()
	delete(c.subscriptions, channel)
}

// handleCatchup sends events missed since "after" directly to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, issueID string, after time.Time) {
	if m.catchupQuerier == nil {
		return
	}
	evts, err := m.catchupQuerier.GetCatchupEvents(ctx, issueID, after, catchupLimit+1)
	if err != nil {
		slog.Error("catchup query failed", "issue_id", issueID, "error", err)
		return
	}
	hasMore := len(evts) > catchupLimit
	if hasMore {
		evts = evts[:catchupLimit]
	}
	for _, evt := range evts {
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			return
		}
	}
	if hasMore {
		m.sendJSON(c, map[string]interface{}{"type": "catchup.overflow", "issue_id": issueID, "has_more": true})
	}
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()
	c.cancel()
	_ = c.Conn.Close()
}

func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

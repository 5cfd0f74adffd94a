// Package realtime maintains the push-update channel: one websocket
// connection for the table currently on screen, delivering full data
// snapshots to a subscriber callback.
package realtime

import (
	"context"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"sheetdash/internal/logging"
	"sheetdash/internal/models"
)

// event is the wire shape of an inbound channel message.
type event struct {
	Event string           `json:"event"`
	Seq   uint64           `json:"seq"`
	Data  models.TableData `json:"data"`
}

const dataUpdateEvent = "data_update"

type dialFunc func(ctx context.Context, urlStr string) (*websocket.Conn, error)

func defaultDial(ctx context.Context, urlStr string) (*websocket.Conn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, urlStr, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, err
}

// connection is one live channel. Manager owns at most one at a time.
type connection struct {
	id      string
	tableID string
	ws      *websocket.Conn
	closed  chan struct{} // signalled by Disconnect before closing the socket
	done    chan struct{} // closed when the read loop exits
}

// Manager owns the channel lifecycle. It is an explicit object constructed
// per application, never package-global state: the view that needs updates
// holds it, connects on table switch, and disconnects on unmount.
//
// Channel failures are logged and swallowed; the subscriber keeps whatever
// snapshot it last received (stale-but-available).
type Manager struct {
	socketURL string
	log       logging.Logger
	dial      dialFunc

	mu         sync.Mutex
	conn       *connection
	tableID    string
	token      string
	onSnapshot func(models.Snapshot)
}

func NewManager(socketURL string, log logging.Logger) *Manager {
	return &Manager{socketURL: socketURL, log: log, dial: defaultDial}
}

// Connect opens the channel for tableID, authenticating with token, and
// feeds every data_update snapshot to onSnapshot. Any previously live
// connection is torn down first, so switching tables never leaves two
// channels open. The token is attached at connect time only; rotating it
// afterwards requires Reauthenticate.
func (m *Manager) Connect(ctx context.Context, tableID, token string, onSnapshot func(models.Snapshot)) error {
	m.Disconnect()

	u, err := url.Parse(m.socketURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("tableId", tableID)
	q.Set("token", token)
	u.RawQuery = q.Encode()

	ws, err := m.dial(ctx, u.String())
	if err != nil {
		m.log.Error(ctx, "channel connect failed", "tableId", tableID, "error", err)
		return err
	}

	c := &connection{
		id:      uuid.NewString(),
		tableID: tableID,
		ws:      ws,
		closed:  make(chan struct{}),
		done:    make(chan struct{}),
	}

	m.mu.Lock()
	m.conn = c
	m.tableID = tableID
	m.token = token
	m.onSnapshot = onSnapshot
	m.mu.Unlock()

	m.log.Debug(ctx, "channel connected", "tableId", tableID, "connId", c.id)

	go m.readLoop(c, onSnapshot)
	return nil
}

func (m *Manager) readLoop(c *connection, onSnapshot func(models.Snapshot)) {
	defer close(c.done)
	ctx := context.Background()

	for {
		var ev event
		if err := c.ws.ReadJSON(&ev); err != nil {
			select {
			case <-c.closed:
				m.log.Debug(ctx, "channel closed", "tableId", c.tableID, "connId", c.id)
			default:
				// Logged, never propagated: the last known data stays up.
				m.log.Error(ctx, "channel read failed", "tableId", c.tableID, "connId", c.id, "error", err)
			}
			return
		}

		if ev.Event != dataUpdateEvent {
			continue
		}
		onSnapshot(models.Snapshot{Data: ev.Data, Seq: ev.Seq})
	}
}

// Disconnect tears down the live connection, if any, and waits for its
// read loop to stop so no callback fires afterwards. Idempotent and safe
// to call when never connected.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	c := m.conn
	m.conn = nil
	m.onSnapshot = nil
	m.mu.Unlock()

	if c == nil {
		return
	}

	close(c.closed)
	c.ws.Close()
	<-c.done
}

// Reauthenticate reconnects the currently watched table with a fresh
// credential. A no-op when nothing is connected.
func (m *Manager) Reauthenticate(ctx context.Context, token string) error {
	m.mu.Lock()
	active := m.conn != nil
	tableID := m.tableID
	onSnapshot := m.onSnapshot
	m.mu.Unlock()

	if !active {
		return nil
	}
	return m.Connect(ctx, tableID, token, onSnapshot)
}

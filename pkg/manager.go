package pkg

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Manager owns the session table and the websocket endpoints. It implements
// PeerSender for the router: a send targeting a session that is gone, or
// whose queue is full, is dropped without error.
type Manager struct {
	lock     sync.RWMutex
	sessions map[uuid.UUID]*Session
	registry *Registry
	router   *Router
	upgrader websocket.Upgrader
}

func NewManager() *Manager {
	m := &Manager{
		lock:     sync.RWMutex{},
		sessions: make(map[uuid.UUID]*Session),
		registry: NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The relay carries no secrets and no payloads, so any
			// origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	m.router = NewRouter(m.registry, m)

	return m
}

// SendTo implements PeerSender. The lock is held across the send so the
// session cannot be deleted, and its channel closed, mid-send; the send
// itself never blocks.
func (m *Manager) SendTo(connID uuid.UUID, env *Envelope) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	session, ok := m.sessions[connID]
	if !ok {
		return
	}

	select {
	case session.send <- env:
	default:
		log.WithFields(log.Fields{
			"session": connID,
			"event":   env.Event,
		}).Warn("Dropping message to slow session")
	}
}

func (m *Manager) addSession(conn *websocket.Conn) *Session {
	session := &Session{
		uuid: uuid.New(),
		conn: conn,
		send: make(chan *Envelope, 256),
	}

	m.lock.Lock()
	m.sessions[session.uuid] = session
	m.lock.Unlock()

	SignalServerSessionsGauge.Inc()

	return session
}

// deleteSession drops the session from the table before routing the
// disconnect, so peer-disconnected aimed at the departed connection is
// already a no-op.
func (m *Manager) deleteSession(session *Session) {
	m.lock.Lock()
	if _, ok := m.sessions[session.uuid]; !ok {
		m.lock.Unlock()
		return
	}
	delete(m.sessions, session.uuid)
	m.lock.Unlock()

	SignalServerSessionsGauge.Dec()

	m.router.HandleDisconnect(session.uuid)

	close(session.send)
}

func (m *Manager) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Signaling server is running."))
}

func (m *Manager) SocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade connection: ", err)
		return
	}

	defer conn.Close()

	session := m.addSession(conn)
	defer m.deleteSession(session)

	logFields := log.Fields{
		"session": session.uuid,
		"remote":  conn.RemoteAddr().String(),
	}

	log.WithFields(logFields).Info("Client connected")

	go session.write()

	session.read(m.router)

	log.WithFields(logFields).Info("Client disconnected")
}

// RunSweeper evicts idle rooms every ttl until ctx is cancelled. Eviction
// lags up to one interval past the deadline, which is fine for a hygiene
// sweep. No-op when ttl is zero or negative.
func (m *Manager) RunSweeper(ctx context.Context, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.router.ExpireIdle(ttl)
		}
	}
}

package pkg

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Generous enough for SDP blobs.
	maxMessageSize = 64 * 1024
)

// Session is one live websocket connection. Its uuid is the connection
// identity used as the lookup key everywhere else; it is never parsed.
type Session struct {
	uuid uuid.UUID
	conn *websocket.Conn
	send chan *Envelope
}

// read pumps inbound frames into the router. It runs in the connection's
// handler goroutine and is the only reader of the connection.
func (s *Session) read(router *Router) {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				log.WithField("session", s.uuid).Error("Failed to read message: ", err)
			}
			return
		}

		env, err := decodeEnvelope(raw)
		if err != nil {
			log.WithField("session", s.uuid).Warn("Dropping malformed message: ", err)
			continue
		}

		router.Dispatch(s.uuid, env)
	}
}

// write drains the send queue onto the connection and keeps the peer alive
// with pings. It is the only writer of the connection and owns closing it.
func (s *Session) write() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case env, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := s.conn.WriteJSON(env); err != nil {
				log.WithField("session", s.uuid).Error("Failed to write message: ", err)
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

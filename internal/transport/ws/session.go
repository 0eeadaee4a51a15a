package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// envelope is the wire frame in both directions: every client request
// and server push is an event name plus a JSON payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outEnvelope struct {
	Event string   `json:"event"`
	Data  any      `json:"data,omitempty"`
	Error *errBody `json:"error,omitempty"`
}

type errBody struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// session is one live websocket. It satisfies presence.Conn so the
// dispatcher can push to it; writes are serialized because gorilla
// connections allow a single concurrent writer.
type session struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	// email is set on successful signin and read only from the session's
	// own read loop.
	email string
}

func newSession(conn *websocket.Conn) *session {
	return &session{conn: conn}
}

func (s *session) Send(event string, payload any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(outEnvelope{Event: event, Data: payload})
}

func (s *session) sendError(event, code, reason string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(outEnvelope{Event: event, Error: &errBody{Code: code, Reason: reason}})
}

package presence

import (
	"sync"

	"kurz/internal/metrics"
	"kurz/internal/user"
)

// Conn is the write side of a live client connection. The websocket
// session satisfies it; tests substitute fakes.
type Conn interface {
	Send(event string, payload any) error
}

type entry struct {
	conn    Conn
	profile user.ProfileDTO
}

// Registry maps signed-in emails to their single live connection.
// A second sign-in for the same email replaces the first; presence is
// in-memory only and empties on restart.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Set registers the connection, displacing any previous one for the
// same email.
func (r *Registry) Set(email string, conn Conn, profile user.ProfileDTO) {
	r.mu.Lock()
	_, existed := r.entries[email]
	r.entries[email] = entry{conn: conn, profile: profile}
	r.mu.Unlock()

	if !existed {
		metrics.ConnectedUsers.Inc()
	}
}

// Remove drops the registration, but only while it still belongs to
// the given connection. A stale disconnect arriving after the user
// signed in again on a fresh socket must not evict the new session.
func (r *Registry) Remove(email string, conn Conn) {
	r.mu.Lock()
	e, ok := r.entries[email]
	removed := ok && e.conn == conn
	if removed {
		delete(r.entries, email)
	}
	r.mu.Unlock()

	if removed {
		metrics.ConnectedUsers.Dec()
	}
}

func (r *Registry) Get(email string) (Conn, bool) {
	r.mu.RLock()
	e, ok := r.entries[email]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return e.conn, true
}

func (r *Registry) Profile(email string) (user.ProfileDTO, bool) {
	r.mu.RLock()
	e, ok := r.entries[email]
	r.mu.RUnlock()
	return e.profile, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

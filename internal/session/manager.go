package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionTTL matches the token expiry horizon in internal/utils. A token
// past that horizon can never reach its session again, so the session and
// everything it owns go with it.
const sessionTTL = 24 * time.Hour

// Manager holds the live sessions keyed by ID. Replaces the ambient
// per-interaction state the tool used to keep: every handler receives the
// session it works on, there are no process-wide catalog or ledger
// singletons. Expired sessions are reaped lazily on Get and Create rather
// than by a background timer; this tool runs no background work.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts an empty session for a freshly authenticated user and
// sweeps out any session whose token horizon has passed, so the map never
// grows past the logins of the last horizon.
func (m *Manager) Create(username string) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	m.mu.Lock()
	for id, old := range m.sessions {
		if time.Since(old.CreatedAt) > sessionTTL {
			delete(m.sessions, id)
		}
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session for an ID. A session older than the token
// horizon is dropped on the spot and reported as gone.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(s.CreatedAt) > sessionTTL {
		delete(m.sessions, id)
		return nil, false
	}
	return s, true
}

// Delete drops a session and everything it owns.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

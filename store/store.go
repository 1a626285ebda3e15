package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store guards one session's state. The reducer itself is pure; the store
// only serializes access so concurrent HTTP requests for the same session
// see whole-state transitions.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

// NewStore returns a store holding the initial session state.
func NewStore() *Store {
	return &Store{state: NewAppState()}
}

// Dispatch applies a command and returns the resulting state snapshot.
func (s *Store) Dispatch(cmd Command) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, cmd)
	return s.state
}

// State returns the current state snapshot.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ─────────────────────────────────────────────────────────────
// Session registry
// ─────────────────────────────────────────────────────────────

// SessionManager maps session IDs to their stores. Sessions are created on
// demand and expire after a period of inactivity; everything is volatile
// and lost on restart.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
}

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewSessionManager returns a manager whose sessions expire after ttl of
// inactivity.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}
}

// NewSessionID mints a fresh session identifier.
func (m *SessionManager) NewSessionID() string {
	return uuid.New().String()
}

// Get returns the store for a session, creating it when absent, and marks
// the session as recently used. Expired sessions are swept opportunistically.
func (m *SessionManager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, entry := range m.sessions {
		if now.Sub(entry.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}

	entry, ok := m.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{store: NewStore()}
		m.sessions[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.store
}

// Len reports the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

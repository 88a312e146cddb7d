package session

import "sync"

// Manager owns the design sessions of all signed-in users. Handler goroutines
// share sessions, so every access goes through the manager's lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// With runs fn against the user's session, creating it on first use.
// The session must not escape fn.
func (m *Manager) With(userID int64, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = NewSession()
		m.sessions[userID] = s
	}
	fn(s)
}

// Drop discards the user's session entirely, order history included.
func (m *Manager) Drop(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

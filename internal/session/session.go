// Package session tracks the game sessions served by a process so they can
// be shut down together.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Session is one running game.
type Session struct {
	ID      int
	User    string
	Started time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	manager *Manager
	once    sync.Once
}

// Context is cancelled when the manager shuts down.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Finish unregisters the session. Safe to call more than once.
func (s *Session) Finish() {
	s.once.Do(func() {
		s.cancel()
		s.manager.remove(s)
	})
}

// Manager registers sessions and shuts them down.
type Manager struct {
	mu       sync.Mutex
	sessions map[int]*Session
	nextID   int
	logger   *log.Logger
	now      func() time.Time
}

// NewManager creates a manager. A nil logger discards.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		sessions: make(map[int]*Session),
		nextID:   1,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers a session for user. Its context derives from parent.
func (m *Manager) Start(parent context.Context, user string) *Session {
	ctx, cancel := context.WithCancel(parent)

	m.mu.Lock()
	s := &Session{
		ID:      m.nextID,
		User:    user,
		Started: m.now(),
		ctx:     ctx,
		cancel:  cancel,
		manager: m,
	}
	m.nextID++
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Info("session started", "id", s.ID, "user", user, "sessions", count)
	return s
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s.ID)
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Info("session finished", "id", s.ID, "user", s.User,
		"duration", m.now().Sub(s.Started).Round(time.Second), "sessions", count)
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown cancels every session and waits for all of them to finish, or
// until timeout elapses. It reports whether every session finished.
func (m *Manager) Shutdown(timeout time.Duration) bool {
	m.mu.Lock()
	for _, s := range m.sessions {
		s.cancel()
	}
	m.mu.Unlock()

	// Wait for all sessions to finish, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		remaining := m.Count()
		if remaining == 0 {
			return true
		}
		select {
		case <-deadline:
			m.logger.Warn("shutdown timed out", "sessions", remaining)
			return false
		case <-ticker.C:
		}
	}
}

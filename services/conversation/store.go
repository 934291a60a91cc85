package conversation

import (
	"context"
	"sync"

	"medibook/models"
)

// SessionStore persists conversation sessions. Implementations must return
// ErrSessionNotFound for unknown ids and must not alias stored sessions with
// the values they hand out.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
}

// MemorySessionStore keeps sessions in a process-local map. Sessions are
// never evicted; they live for the lifetime of the process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.Session)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = session.Clone()
	return nil
}

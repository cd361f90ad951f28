// Package session provides the pluggable session store backends. Both
// implementations satisfy domain.SessionStore so endpoint logic never knows
// which one is wired in.
package session

import (
	"context"
	"sync"
	"time"

	"portal-gateway/internal/domain"
)

// MemoryStore is a thread-safe in-memory session store with TTL enforcement.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore creates a memory store and starts its cleanup loop.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]domain.Session),
	}
	go s.cleanupLoop()
	return s
}

// Get retrieves a session by ID. Expired sessions are reported as not found.
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, found := s.sessions[id]
	if !found || sess.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

// Put stores a session. A session without a principal is never stored, so an
// identifier alone can never authenticate.
func (s *MemoryStore) Put(_ context.Context, session domain.Session) error {
	if session.CustomerID == "" {
		return domain.ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// cleanup removes expired sessions.
func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
		}
	}
}

// cleanupLoop runs periodic cleanup of expired sessions.
func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

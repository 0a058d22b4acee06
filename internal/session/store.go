package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the in-memory registry of live sessions. Nothing is persisted;
// sessions idle for longer than the configured timeout are dropped.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewStore creates an empty session store
func NewStore(idleTimeout time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Get returns a live session and marks it as used
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.now())
	return sess, true
}

// Create starts a new empty session
func (s *Store) Create() *Session {
	sess := newSession(uuid.NewString(), s.now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("Session created", zap.String("session_id", sess.ID))
	return sess
}

// GetOrCreate returns the session for id, or a new one when id is unknown.
// created reports whether a new session was started.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// EvictIdle drops sessions idle for longer than the timeout and returns how
// many were removed
func (s *Store) EvictIdle() int {
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is cancelled
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 {
				s.logger.Info("Evicted idle sessions",
					zap.Int("evicted", n),
					zap.Int("remaining", s.Len()),
				)
			}
		}
	}
}

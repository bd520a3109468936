package session

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store keeps one Session per rider and forgets sessions idle for longer
// than the configured timeout.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cat      Resolver
	idle     time.Duration
	now      func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore constructs an empty Store.
func NewStore(cat Resolver, idle time.Duration, opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		cat:      cat,
		idle:     idle,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the rider's session, starting a fresh one if there is none or
// the previous one went idle.
func (s *Store) Get(riderID string) *Session {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[riderID]
	if !ok || s.expired(sess, now) {
		sess = newSession(s.cat, now)
		s.sessions[riderID] = sess
	}
	sess.lastSeen = now
	return sess
}

// End discards the rider's session.
func (s *Store) End(riderID string) {
	s.mu.Lock()
	delete(s.sessions, riderID)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, log *slog.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				log.DebugContext(ctx, "expired idle sessions", "count", n)
			}
		}
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.idle > 0 && now.Sub(sess.lastSeen) > s.idle
}

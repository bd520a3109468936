package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
)

// Draft is a selected schedule entry the rider has not yet confirmed.
type Draft struct {
	Entry         domain.ScheduleEntry `json:"entry"`
	StopStationID domain.StationID     `json:"stop_station_id"`
}

// Session is one rider's search state. Its methods are safe for concurrent
// use.
type Session struct {
	mu       sync.Mutex
	cat      Resolver
	sel      Selection
	draft    *Draft
	tracker  *schedule.Tracker
	lastSeen time.Time
}

func newSession(cat Resolver, now time.Time) *Session {
	return &Session{cat: cat, tracker: schedule.NewTracker(), lastSeen: now}
}

// Select updates one selection field. A change supersedes the current
// results and any in-flight query, and drops the Draft.
func (s *Session) Select(f Field, value string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := s.sel.Set(s.cat, f, value)
	if err != nil {
		return s.sel, err
	}
	if changed {
		s.tracker.Invalidate()
		s.draft = nil
	}
	return s.sel, nil
}

// Selection returns the current route selection.
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Tracker returns the result tracker of this session.
func (s *Session) Tracker() *schedule.Tracker {
	return s.tracker
}

// Choose puts the resolved entry tripID into the Draft with the given stop
// station. The entry must be part of the currently visible results.
func (s *Session) Choose(tripID string, stop domain.StationID) (Draft, error) {
	if stop == "" {
		return Draft{}, fmt.Errorf("%w: a stop station is required", domain.ErrValidation)
	}
	// Held across the lookup so a concurrent Select cannot invalidate the
	// results between reading the entry and storing the Draft.
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tracker.Entry(tripID)
	if !ok {
		return Draft{}, fmt.Errorf("session.Session.Choose: trip %s: %w", tripID, domain.ErrNotFound)
	}
	d := Draft{Entry: entry, StopStationID: stop}
	s.draft = &d
	return d, nil
}

// Draft returns the current Draft, if any.
func (s *Session) Draft() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// Discard drops the Draft.
func (s *Session) Discard() {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
}

// Commit drops the Draft if it is still d. It reports whether it did; false
// means the rider changed the Draft while d was being confirmed.
func (s *Session) Commit(d Draft) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil || *s.draft != d {
		return false
	}
	s.draft = nil
	return true
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/session"
)

// ReservationCreator creates Pending reservations.
type ReservationCreator interface {
	Create(ctx context.Context, riderID string, entry domain.ScheduleEntry, stop domain.StationID) (domain.Reservation, error)
}

// SessionService drives the per-rider booking flow: select a route, search,
// pick a train into the Draft, confirm it into a reservation.
type SessionService struct {
	sessions     *session.Store
	search       *SearchService
	reservations ReservationCreator
	log          *slog.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions *session.Store, search *SearchService, reservations ReservationCreator, log *slog.Logger) *SessionService {
	return &SessionService{sessions: sessions, search: search, reservations: reservations, log: log}
}

func (s *SessionService) session(riderID string) (*session.Session, error) {
	if riderID == "" {
		return nil, fmt.Errorf("%w: log in to start a search session", domain.ErrIncompleteContext)
	}
	return s.sessions.Get(riderID), nil
}

// Select sets one route field for the rider.
func (s *SessionService) Select(ctx context.Context, riderID string, field session.Field, value string) (session.Selection, error) {
	sess, err := s.session(riderID)
	if err != nil {
		return session.Selection{}, err
	}
	return sess.Select(field, value)
}

// Search queries schedules for the rider's selected route. The returned
// snapshot is the session's visible state afterwards: if a newer search or
// a selection change superseded this one while it was in flight, its
// response is dropped and the newer state is returned. A failed search
// still resolves the session to zero results; the error is returned too.
func (s *SessionService) Search(ctx context.Context, riderID string, mode domain.SearchMode, dir domain.Direction) (schedule.Snapshot, error) {
	sess, err := s.session(riderID)
	if err != nil {
		return schedule.Snapshot{}, err
	}
	origin, dest, err := sess.Selection().Route()
	if err != nil {
		return schedule.Snapshot{}, err
	}
	q, err := s.search.queryFor(origin, dest, mode, dir)
	if err != nil {
		return schedule.Snapshot{}, err
	}

	tracker := sess.Tracker()
	tk := tracker.Begin()
	res, qerr := s.search.shaper.Query(ctx, q)
	var entries []domain.ScheduleEntry
	if qerr == nil {
		entries = res.Collect()
	}
	if !tracker.Resolve(tk, entries, qerr) {
		s.log.DebugContext(ctx, "discarded superseded schedule response", "rider_id", riderID, "ticket", tk)
		return tracker.Snapshot(), nil
	}
	if qerr != nil {
		return tracker.Snapshot(), fmt.Errorf("service.SessionService.Search: %w", qerr)
	}
	return tracker.Snapshot(), nil
}

// Results returns the rider's visible result state.
func (s *SessionService) Results(_ context.Context, riderID string) (schedule.Snapshot, error) {
	sess, err := s.session(riderID)
	if err != nil {
		return schedule.Snapshot{}, err
	}
	return sess.Tracker().Snapshot(), nil
}

// Choose places a result entry into the rider's Draft.
func (s *SessionService) Choose(_ context.Context, riderID, tripID string, stop domain.StationID) (session.Draft, error) {
	sess, err := s.session(riderID)
	if err != nil {
		return session.Draft{}, err
	}
	return sess.Choose(tripID, stop)
}

// Discard drops the rider's Draft.
func (s *SessionService) Discard(_ context.Context, riderID string) error {
	sess, err := s.session(riderID)
	if err != nil {
		return err
	}
	sess.Discard()
	return nil
}

// Confirm turns the rider's Draft into a Pending reservation. The Draft is
// cleared only when the reservation was created.
func (s *SessionService) Confirm(ctx context.Context, riderID string) (domain.Reservation, error) {
	sess, err := s.session(riderID)
	if err != nil {
		return domain.Reservation{}, err
	}
	d, ok := sess.Draft()
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: no train selected", domain.ErrIncompleteContext)
	}
	res, err := s.reservations.Create(ctx, riderID, d.Entry, d.StopStationID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.SessionService.Confirm: %w", err)
	}
	sess.Commit(d)
	return res, nil
}

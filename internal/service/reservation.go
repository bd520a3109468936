// Package service contains the business logic of the stop reservation
// workflow. Services validate inputs, enforce lifecycle rules, and
// orchestrate repo and schedule calls. No SQL or HTTP lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/repo"
)

// maxTransitionAttempts bounds re-evaluation after a lost conditional update.
const maxTransitionAttempts = 3

// StationLookup is the part of the Location Catalog the lifecycle needs.
type StationLookup interface {
	Station(id domain.StationID) (domain.Station, bool)
}

// ReservationView is a reservation as presented to its rider at a moment:
// Shown is the classified status and ArrivingSoon the derived badge. The
// embedded Status is always the stored one.
type ReservationView struct {
	domain.Reservation
	Shown        domain.Status
	ArrivingSoon bool
}

// Listing is a rider's reservations partitioned for display.
type Listing struct {
	Upcoming  []ReservationView
	Completed []ReservationView
	Cancelled []ReservationView
}

// ReservationService is the Reservation Lifecycle Manager. It owns every
// status change; Completed is never stored and is derived on read.
type ReservationService struct {
	repo       repo.ReservationRepo
	stations   StationLookup
	log        *slog.Logger
	now        func() time.Time
	loc        *time.Location
	soonWindow time.Duration
	flight     singleflight.Group
}

// ReservationOption configures a ReservationService.
type ReservationOption func(*ReservationService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ReservationOption {
	return func(s *ReservationService) { s.now = now }
}

// WithLocation sets the service time zone in which travel dates and
// departure times are interpreted.
func WithLocation(loc *time.Location) ReservationOption {
	return func(s *ReservationService) { s.loc = loc }
}

// WithArrivingSoonWindow sets how close to departure a Confirmed reservation
// is flagged as arriving soon. Zero disables the flag.
func WithArrivingSoonWindow(d time.Duration) ReservationOption {
	return func(s *ReservationService) { s.soonWindow = d }
}

// NewReservationService constructs a ReservationService.
func NewReservationService(r repo.ReservationRepo, stations StationLookup, log *slog.Logger, opts ...ReservationOption) *ReservationService {
	s := &ReservationService{
		repo:       r,
		stations:   stations,
		log:        log,
		now:        time.Now,
		loc:        time.Local,
		soonWindow: 30 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ReservationService) clock() time.Time {
	return s.now().In(s.loc)
}

// Create records a Pending reservation for entry with the given stop
// station. It fails with domain.ErrIncompleteContext when the rider, the
// entry or the stop station is missing and with domain.ErrValidation when
// the stop station is unknown or the entry is unusable.
func (s *ReservationService) Create(ctx context.Context, riderID string, entry domain.ScheduleEntry, stop domain.StationID) (domain.Reservation, error) {
	switch {
	case riderID == "":
		return domain.Reservation{}, fmt.Errorf("%w: log in to reserve a stop", domain.ErrIncompleteContext)
	case entry.IsZero():
		return domain.Reservation{}, fmt.Errorf("%w: no train selected", domain.ErrIncompleteContext)
	case stop == "":
		return domain.Reservation{}, fmt.Errorf("%w: no stop station selected", domain.ErrIncompleteContext)
	}
	if err := validateEntry(entry); err != nil {
		return domain.Reservation{}, err
	}
	if _, ok := s.stations.Station(stop); !ok {
		return domain.Reservation{}, fmt.Errorf("%w: unknown stop station %s", domain.ErrValidation, stop)
	}

	tripID := entry.TripID
	if tripID == "" {
		tripID = entry.TravelDate + "/" + entry.TrainNumber
	}
	created, err := s.repo.Create(ctx, domain.Reservation{
		RiderID:              riderID,
		TripID:               tripID,
		StopStationID:        stop,
		OriginStationID:      entry.OriginStationID,
		DestinationStationID: entry.DestinationStationID,
		TrainNumber:          entry.TrainNumber,
		TrainType:            entry.TrainType,
		TerminalStationName:  entry.TerminalStationName,
		TravelDate:           entry.TravelDate,
		DepartureTime:        entry.DepartureTime,
		ArrivalTime:          entry.ArrivalTime,
		Status:               domain.StatusPending,
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	s.log.InfoContext(ctx, "reservation created",
		"reservation_id", created.ID, "rider_id", riderID, "trip_id", tripID, "stop_station_id", stop)
	return created, nil
}

// Get returns the rider's reservation. A reservation owned by another rider
// is reported as domain.ErrNotFound.
func (s *ReservationService) Get(ctx context.Context, riderID string, id uuid.UUID) (ReservationView, error) {
	res, err := s.owned(ctx, riderID, id)
	if err != nil {
		return ReservationView{}, fmt.Errorf("service.ReservationService.Get: %w", err)
	}
	return s.view(res, s.clock()), nil
}

// Acknowledge moves a Pending reservation to Confirmed. It is a no-op on a
// Confirmed one and fails with domain.ErrInvalidTransition once the
// reservation is Cancelled or Completed.
func (s *ReservationService) Acknowledge(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	res, err := s.transition(ctx, id, "acknowledge", func(shown domain.Status) (domain.Status, bool, error) {
		switch shown {
		case domain.StatusPending:
			return domain.StatusConfirmed, false, nil
		case domain.StatusConfirmed:
			return "", true, nil
		}
		return "", false, domain.ErrInvalidTransition
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Acknowledge: %w", err)
	}
	return res, nil
}

// Cancel moves the rider's Pending or Confirmed reservation to Cancelled.
// Cancelling a Cancelled reservation succeeds without change so duplicate
// clicks are harmless; a Completed one fails with
// domain.ErrInvalidTransition.
func (s *ReservationService) Cancel(ctx context.Context, riderID string, id uuid.UUID) (domain.Reservation, error) {
	if _, err := s.owned(ctx, riderID, id); err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Cancel: %w", err)
	}
	res, err := s.transition(ctx, id, "cancel", func(shown domain.Status) (domain.Status, bool, error) {
		switch shown {
		case domain.StatusPending, domain.StatusConfirmed:
			return domain.StatusCancelled, false, nil
		case domain.StatusCancelled:
			return "", true, nil
		}
		return "", false, domain.ErrInvalidTransition
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Cancel: %w", err)
	}
	return res, nil
}

// List returns the rider's reservations partitioned into upcoming,
// completed and cancelled, classified at the current time.
func (s *ReservationService) List(ctx context.Context, riderID string) (Listing, error) {
	if riderID == "" {
		return Listing{}, fmt.Errorf("%w: log in to see your reservations", domain.ErrIncompleteContext)
	}
	all, err := s.repo.ListByRider(ctx, riderID)
	if err != nil {
		return Listing{}, fmt.Errorf("service.ReservationService.List: %w", err)
	}

	now := s.clock()
	parts := domain.Partition(all, now)
	return Listing{
		Upcoming:  s.views(parts.Upcoming, now),
		Completed: s.views(parts.Completed, now),
		Cancelled: s.views(parts.Cancelled, now),
	}, nil
}

// decideFunc maps the currently shown status to the target status. noop
// means the reservation is already where the caller wants it.
type decideFunc func(shown domain.Status) (to domain.Status, noop bool, err error)

// transition applies decide to reservation id. Concurrent calls for the same
// id and operation share one execution. The storage update is conditional on
// the status decide saw; if another writer got there first the decision is
// re-evaluated against the fresh state.
func (s *ReservationService) transition(ctx context.Context, id uuid.UUID, op string, decide decideFunc) (domain.Reservation, error) {
	v, err, shared := s.flight.Do(op+":"+id.String(), func() (any, error) {
		return s.applyTransition(context.WithoutCancel(ctx), id, op, decide)
	})
	if shared {
		s.log.DebugContext(ctx, "coalesced reservation mutation", "op", op, "reservation_id", id)
	}
	if err != nil {
		return domain.Reservation{}, err
	}
	return v.(domain.Reservation), nil
}

func (s *ReservationService) applyTransition(ctx context.Context, id uuid.UUID, op string, decide decideFunc) (domain.Reservation, error) {
	for range maxTransitionAttempts {
		cur, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return domain.Reservation{}, err
		}
		shown := domain.Classify(cur, s.clock())
		to, noop, err := decide(shown)
		if err != nil {
			s.log.WarnContext(ctx, "rejected reservation transition",
				"op", op, "reservation_id", id, "status", shown)
			return domain.Reservation{}, fmt.Errorf("%w: cannot %s a %s reservation", err, op, shown)
		}
		if noop {
			return cur, nil
		}

		updated, err := s.repo.UpdateStatus(ctx, id, []domain.Status{cur.Status}, to)
		if errors.Is(err, repo.ErrStaleStatus) {
			continue
		}
		if err != nil {
			return domain.Reservation{}, err
		}
		s.log.InfoContext(ctx, "reservation status changed",
			"reservation_id", id, "from", cur.Status, "to", to)
		return updated, nil
	}
	return domain.Reservation{}, fmt.Errorf("%s: reservation %s kept changing underneath", op, id)
}

// owned loads id and checks it belongs to riderID.
func (s *ReservationService) owned(ctx context.Context, riderID string, id uuid.UUID) (domain.Reservation, error) {
	if riderID == "" {
		return domain.Reservation{}, fmt.Errorf("%w: login required", domain.ErrIncompleteContext)
	}
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if res.RiderID != riderID {
		return domain.Reservation{}, domain.ErrNotFound
	}
	return res, nil
}

func (s *ReservationService) view(r domain.Reservation, now time.Time) ReservationView {
	return ReservationView{
		Reservation:  r,
		Shown:        domain.Classify(r, now),
		ArrivingSoon: domain.ArrivingSoon(r, now, s.soonWindow),
	}
}

func (s *ReservationService) views(rs []domain.Reservation, now time.Time) []ReservationView {
	out := make([]ReservationView, len(rs))
	for i, r := range rs {
		out[i] = s.view(r, now)
	}
	return out
}

// validateEntry rejects entries whose schedule cannot be classified later.
func validateEntry(e domain.ScheduleEntry) error {
	if e.TrainNumber == "" {
		return fmt.Errorf("%w: train number is required", domain.ErrValidation)
	}
	if err := domain.ValidateDate(e.TravelDate); err != nil {
		return err
	}
	if !domain.IsClock(e.DepartureTime) {
		return fmt.Errorf("%w: departure time must be HH:MM", domain.ErrValidation)
	}
	return nil
}

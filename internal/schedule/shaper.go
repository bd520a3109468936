package schedule

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/stopbook/backend/internal/domain"
)

// StationChecker reports whether a station id exists in the catalog.
type StationChecker interface {
	Contains(id domain.StationID) bool
}

// Query is one schedule search. Floor is an inclusive HH:MM lower bound on
// departure time; empty means no floor.
type Query struct {
	Origin      domain.StationID
	Destination domain.StationID
	Date        string
	Floor       string
	Direction   domain.Direction
}

// Validate checks the query preconditions. It never touches the network.
func (q Query) Validate(stations StationChecker) error {
	if q.Origin == "" || q.Destination == "" {
		return fmt.Errorf("%w: origin and destination are required", domain.ErrValidation)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must differ", domain.ErrValidation)
	}
	if !stations.Contains(q.Origin) {
		return fmt.Errorf("%w: unknown origin station %s", domain.ErrValidation, q.Origin)
	}
	if !stations.Contains(q.Destination) {
		return fmt.Errorf("%w: unknown destination station %s", domain.ErrValidation, q.Destination)
	}
	if err := domain.ValidateDate(q.Date); err != nil {
		return err
	}
	if q.Floor != "" {
		if err := domain.ValidateClock(q.Floor); err != nil {
			return err
		}
	}
	if _, err := domain.ParseDirection(string(q.Direction)); err != nil {
		return err
	}
	return nil
}

// Result is the shaped answer to a Query. Entries are held in departure
// order; the time floor and direction filter are applied lazily by All.
type Result struct {
	entries    []domain.ScheduleEntry
	floor      string
	direction  domain.Direction
	directions *DirectionTable

	// Discarded counts upstream records dropped as malformed.
	Discarded int
}

// All yields the entries passing the time floor and direction filter, in
// ascending departure order with ties broken by train number.
func (r Result) All() iter.Seq[domain.ScheduleEntry] {
	return func(yield func(domain.ScheduleEntry) bool) {
		for _, e := range r.entries {
			if r.floor != "" && e.DepartureTime < r.floor {
				continue
			}
			if !r.directions.Match(e, r.direction) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Collect returns All as a slice. It is never nil.
func (r Result) Collect() []domain.ScheduleEntry {
	out := slices.Collect(r.All())
	if out == nil {
		return []domain.ScheduleEntry{}
	}
	return out
}

// Shaper validates queries, delegates the lookup to a Source and shapes the
// raw records.
type Shaper struct {
	source     Source
	stations   StationChecker
	directions *DirectionTable
	log        *slog.Logger
}

// NewShaper constructs a Shaper.
func NewShaper(source Source, stations StationChecker, directions *DirectionTable, log *slog.Logger) *Shaper {
	return &Shaper{source: source, stations: stations, directions: directions, log: log}
}

// Query runs q. Invalid queries fail with domain.ErrValidation before any
// lookup; lookup failures are *domain.QueryError. Zero matching trips is an
// empty Result, not an error.
func (s *Shaper) Query(ctx context.Context, q Query) (Result, error) {
	if err := q.Validate(s.stations); err != nil {
		return Result{}, err
	}
	if q.Direction == "" {
		q.Direction = domain.DirectionAll
	}

	req := Request{Start: q.Origin, End: q.Destination, Date: q.Date}
	raw, err := s.source.Lookup(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("schedule.Shaper.Query: %w", err)
	}

	res := Result{
		entries:    make([]domain.ScheduleEntry, 0, len(raw)),
		floor:      q.Floor,
		direction:  q.Direction,
		directions: s.directions,
	}
	for i, r := range raw {
		e, err := Normalize(r, req)
		if err != nil {
			res.Discarded++
			s.log.WarnContext(ctx, "discarding schedule record", "index", i, "error", err)
			continue
		}
		res.entries = append(res.entries, e)
	}
	slices.SortStableFunc(res.entries, compareEntries)
	return res, nil
}

func compareEntries(a, b domain.ScheduleEntry) int {
	if c := cmp.Compare(a.DepartureTime, b.DepartureTime); c != 0 {
		return c
	}
	return cmp.Compare(a.TrainNumber, b.TrainNumber)
}

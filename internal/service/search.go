package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/schedule"
)

// Shaper runs shaped schedule queries. *schedule.Shaper satisfies it.
type Shaper interface {
	Query(ctx context.Context, q schedule.Query) (schedule.Result, error)
}

// StationResolver is the part of the Location Catalog search needs.
type StationResolver interface {
	ResolveStationID(region domain.Region, name string) (domain.StationID, bool)
	Contains(id domain.StationID) bool
}

// StationRef names a station either by id or by display name within a
// region. ID wins when both are given.
type StationRef struct {
	ID     domain.StationID
	Region domain.Region
	Name   string
}

// SearchRequest is a stateless schedule search.
type SearchRequest struct {
	Origin      StationRef
	Destination StationRef
	Mode        domain.SearchMode
	Direction   domain.Direction
}

// SearchService turns rider-level search input into shaped schedule queries.
type SearchService struct {
	shaper   Shaper
	stations StationResolver
	now      func() time.Time
	loc      *time.Location
}

// NewSearchService constructs a SearchService. Search mode Now is resolved
// against now() in loc.
func NewSearchService(shaper Shaper, stations StationResolver, loc *time.Location, now func() time.Time) *SearchService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &SearchService{shaper: shaper, stations: stations, now: now, loc: loc}
}

// Search resolves station names through the catalog and the search mode
// against the service clock, then runs the query.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (schedule.Result, error) {
	q, err := s.buildQuery(req)
	if err != nil {
		return schedule.Result{}, err
	}
	res, err := s.shaper.Query(ctx, q)
	if err != nil {
		return schedule.Result{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}
	return res, nil
}

func (s *SearchService) buildQuery(req SearchRequest) (schedule.Query, error) {
	origin, err := s.resolve(req.Origin, "origin")
	if err != nil {
		return schedule.Query{}, err
	}
	dest, err := s.resolve(req.Destination, "destination")
	if err != nil {
		return schedule.Query{}, err
	}
	return s.queryFor(origin, dest, req.Mode, req.Direction)
}

func (s *SearchService) queryFor(origin, dest domain.StationID, mode domain.SearchMode, dir domain.Direction) (schedule.Query, error) {
	date, floor, err := domain.ResolveMode(mode, s.now().In(s.loc))
	if err != nil {
		return schedule.Query{}, err
	}
	q := schedule.Query{Origin: origin, Destination: dest, Date: date, Floor: floor, Direction: dir}
	if err := q.Validate(s.stations); err != nil {
		return schedule.Query{}, err
	}
	return q, nil
}

func (s *SearchService) resolve(ref StationRef, role string) (domain.StationID, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}
	if ref.Region == "" || ref.Name == "" {
		return "", fmt.Errorf("%w: %s station is required", domain.ErrValidation, role)
	}
	id, ok := s.stations.ResolveStationID(ref.Region, ref.Name)
	if !ok {
		return "", fmt.Errorf("%w: no %s station %q in %s", domain.ErrValidation, role, ref.Name, ref.Region)
	}
	return id, nil
}

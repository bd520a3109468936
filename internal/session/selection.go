// Package session holds the private, in-memory search state of each rider:
// the cascading origin/destination selection, the tracked result set and the
// unconfirmed Draft. Nothing here is persisted or shared between riders.
package session

import (
	"fmt"
	"slices"

	"github.com/stopbook/backend/internal/domain"
)

// Field names one input of the route selection.
type Field string

const (
	FieldOriginRegion       Field = "origin_region"
	FieldOriginStation      Field = "origin_station"
	FieldDestinationRegion  Field = "destination_region"
	FieldDestinationStation Field = "destination_station"
)

// dependents lists, for each field, the fields whose value is only
// meaningful relative to it. Changing a field clears its dependents.
var dependents = map[Field][]Field{
	FieldOriginRegion:      {FieldOriginStation},
	FieldDestinationRegion: {FieldDestinationStation},
}

// parent is the inverse of dependents.
var parent = map[Field]Field{
	FieldOriginStation:      FieldOriginRegion,
	FieldDestinationStation: FieldDestinationRegion,
}

// Resolver is the part of the Location Catalog a Selection needs.
type Resolver interface {
	ListRegions() []domain.Region
	ResolveStationID(region domain.Region, name string) (domain.StationID, bool)
}

// Selection is the rider's current route choice. Station fields hold the
// display name chosen within the parent region; the resolved ids are kept
// alongside.
type Selection struct {
	OriginRegion         domain.Region    `json:"origin_region"`
	OriginStation        string           `json:"origin_station"`
	OriginStationID      domain.StationID `json:"origin_station_id"`
	DestinationRegion    domain.Region    `json:"destination_region"`
	DestinationStation   string           `json:"destination_station"`
	DestinationStationID domain.StationID `json:"destination_station_id"`
}

// ParseField validates a field name received from a client.
func ParseField(s string) (Field, error) {
	f := Field(s)
	switch f {
	case FieldOriginRegion, FieldOriginStation, FieldDestinationRegion, FieldDestinationStation:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown selection field %q", domain.ErrValidation, s)
}

// Set assigns value to f and clears every field that depends on f. An empty
// value clears f. changed is false when the selection is left as it was.
func (s *Selection) Set(cat Resolver, f Field, value string) (changed bool, err error) {
	if value == s.get(f) {
		return false, nil
	}
	if value != "" {
		if err := s.check(cat, f, value); err != nil {
			return false, err
		}
	}
	s.put(cat, f, value)
	s.invalidate(f)
	return true, nil
}

// Route returns the resolved origin and destination ids. Both must be
// selected.
func (s Selection) Route() (origin, destination domain.StationID, err error) {
	if s.OriginStationID == "" || s.DestinationStationID == "" {
		return "", "", fmt.Errorf("%w: select an origin and a destination station first", domain.ErrValidation)
	}
	return s.OriginStationID, s.DestinationStationID, nil
}

func (s *Selection) check(cat Resolver, f Field, value string) error {
	switch f {
	case FieldOriginRegion, FieldDestinationRegion:
		if !slices.Contains(cat.ListRegions(), domain.Region(value)) {
			return fmt.Errorf("%w: unknown region %q", domain.ErrValidation, value)
		}
	case FieldOriginStation, FieldDestinationStation:
		region := domain.Region(s.get(parent[f]))
		if region == "" {
			return fmt.Errorf("%w: choose a region before a station", domain.ErrValidation)
		}
		if _, ok := cat.ResolveStationID(region, value); !ok {
			return fmt.Errorf("%w: no station %q in %s", domain.ErrValidation, value, region)
		}
	}
	return nil
}

// invalidate clears the transitive dependents of f.
func (s *Selection) invalidate(f Field) {
	for _, d := range dependents[f] {
		s.put(nil, d, "")
		s.invalidate(d)
	}
}

func (s *Selection) get(f Field) string {
	switch f {
	case FieldOriginRegion:
		return string(s.OriginRegion)
	case FieldOriginStation:
		return s.OriginStation
	case FieldDestinationRegion:
		return string(s.DestinationRegion)
	case FieldDestinationStation:
		return s.DestinationStation
	}
	return ""
}

// put stores value; station ids are resolved through cat, which may be nil
// when clearing.
func (s *Selection) put(cat Resolver, f Field, value string) {
	var id domain.StationID
	if value != "" && cat != nil {
		if region := domain.Region(s.get(parent[f])); region != "" {
			id, _ = cat.ResolveStationID(region, value)
		}
	}
	switch f {
	case FieldOriginRegion:
		s.OriginRegion = domain.Region(value)
	case FieldOriginStation:
		s.OriginStation, s.OriginStationID = value, id
	case FieldDestinationRegion:
		s.DestinationRegion = domain.Region(value)
	case FieldDestinationStation:
		s.DestinationStation, s.DestinationStationID = value, id
	}
}

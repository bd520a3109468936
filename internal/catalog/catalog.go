// Package catalog is the read-only Location Catalog: the fixed list of
// administrative regions and the stations in each, with the station ids the
// schedule service understands. Data is loaded once at start-up from an
// embedded YAML document and never changes afterwards.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/stopbook/backend/internal/domain"
)

//go:embed stations.yaml
var defaultData []byte

type document struct {
	Regions []regionDoc `yaml:"regions" validate:"required,min=1,dive"`
}

type regionDoc struct {
	Name     string       `yaml:"name" validate:"required"`
	Stations []stationDoc `yaml:"stations" validate:"dive"`
}

type stationDoc struct {
	Name  string `yaml:"name" validate:"required"`
	ID    string `yaml:"id" validate:"required,numeric"`
	Small bool   `yaml:"small"`
}

// Catalog answers region and station lookups. It is safe for concurrent use
// because it is immutable after Load.
type Catalog struct {
	regions  []domain.Region
	byRegion map[domain.Region][]domain.Station
	byID     map[domain.StationID]domain.Station
}

// Load parses the embedded station data.
func Load() (*Catalog, error) {
	return Parse(defaultData)
}

// Parse builds a Catalog from a YAML document. It rejects duplicate region
// names and duplicate station ids.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog.Parse: decode: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("catalog.Parse: validate: %w", err)
	}

	c := &Catalog{
		regions:  make([]domain.Region, 0, len(doc.Regions)),
		byRegion: make(map[domain.Region][]domain.Station, len(doc.Regions)),
		byID:     make(map[domain.StationID]domain.Station),
	}
	for _, rd := range doc.Regions {
		region := domain.Region(rd.Name)
		if _, dup := c.byRegion[region]; dup {
			return nil, fmt.Errorf("catalog.Parse: duplicate region %q", rd.Name)
		}
		stations := make([]domain.Station, 0, len(rd.Stations))
		for _, sd := range rd.Stations {
			st := domain.Station{
				Name:   sd.Name,
				ID:     domain.StationID(sd.ID),
				Region: region,
				Small:  sd.Small,
			}
			if prev, dup := c.byID[st.ID]; dup {
				return nil, fmt.Errorf("catalog.Parse: station id %s used by both %s and %s", st.ID, prev.Name, st.Name)
			}
			c.byID[st.ID] = st
			stations = append(stations, st)
		}
		c.regions = append(c.regions, region)
		c.byRegion[region] = stations
	}
	return c, nil
}

// ListRegions returns every region in canonical order.
func (c *Catalog) ListRegions() []domain.Region {
	out := make([]domain.Region, len(c.regions))
	copy(out, c.regions)
	return out
}

// StationsOf returns the stations in region, in catalog order. Unknown and
// data-incomplete regions yield an empty, non-nil slice.
func (c *Catalog) StationsOf(region domain.Region) []domain.Station {
	stations := c.byRegion[region]
	out := make([]domain.Station, len(stations))
	copy(out, stations)
	return out
}

// ResolveStationID looks up a station by its display name within region.
// ok is false when no station of that name exists there.
func (c *Catalog) ResolveStationID(region domain.Region, name string) (domain.StationID, bool) {
	for _, st := range c.byRegion[region] {
		if st.Name == name {
			return st.ID, true
		}
	}
	return "", false
}

// Station returns the station with the given id.
func (c *Catalog) Station(id domain.StationID) (domain.Station, bool) {
	st, ok := c.byID[id]
	return st, ok
}

// Contains reports whether id names a station in the catalog.
func (c *Catalog) Contains(id domain.StationID) bool {
	_, ok := c.byID[id]
	return ok
}

// Package domain contains the core data types shared by the catalog, schedule,
// session, repo, service and handler packages. It has no dependencies on any
// other internal package.
package domain

// Region is an administrative region (縣市) from the fixed canonical list.
type Region string

// StationID is the opaque, stable key the schedule service uses for a station.
type StationID string

// Station is a railway station belonging to exactly one Region.
// Small marks unstaffed halts (小站) where most stop reservations are made.
type Station struct {
	Name   string    `json:"name"`
	ID     StationID `json:"id"`
	Region Region    `json:"region"`
	Small  bool      `json:"small,omitempty"`
}

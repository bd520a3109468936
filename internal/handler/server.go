// Package handler implements the HTTP handlers for the stop reservation API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (catalog.go, session.go, etc.)
// but share the same Server struct and error mapping.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/service"
	"github.com/stopbook/backend/internal/session"
)

// CatalogReader is the Location Catalog as seen by the handlers.
type CatalogReader interface {
	ListRegions() []domain.Region
	StationsOf(region domain.Region) []domain.Station
	ResolveStationID(region domain.Region, name string) (domain.StationID, bool)
	Station(id domain.StationID) (domain.Station, bool)
}

// Searcher runs stateless schedule searches.
type Searcher interface {
	Search(ctx context.Context, req service.SearchRequest) (schedule.Result, error)
}

// SessionServicer drives the per-rider booking flow.
type SessionServicer interface {
	Select(ctx context.Context, riderID string, field session.Field, value string) (session.Selection, error)
	Search(ctx context.Context, riderID string, mode domain.SearchMode, dir domain.Direction) (schedule.Snapshot, error)
	Results(ctx context.Context, riderID string) (schedule.Snapshot, error)
	Choose(ctx context.Context, riderID, tripID string, stop domain.StationID) (session.Draft, error)
	Discard(ctx context.Context, riderID string) error
	Confirm(ctx context.Context, riderID string) (domain.Reservation, error)
}

// ReservationServicer is the Reservation Lifecycle Manager.
type ReservationServicer interface {
	Create(ctx context.Context, riderID string, entry domain.ScheduleEntry, stop domain.StationID) (domain.Reservation, error)
	Get(ctx context.Context, riderID string, id uuid.UUID) (service.ReservationView, error)
	Acknowledge(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	Cancel(ctx context.Context, riderID string, id uuid.UUID) (domain.Reservation, error)
	List(ctx context.Context, riderID string) (service.Listing, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
type Server struct {
	catalog      CatalogReader
	search       Searcher
	sessions     SessionServicer
	reservations ReservationServicer
	export       Exporter
	openAPI      []byte
	log          *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// Deps lists the Server's collaborators. Tests wire only what they
// exercise; calling an endpoint whose service is nil panics.
type Deps struct {
	Catalog      CatalogReader
	Search       Searcher
	Sessions     SessionServicer
	Reservations ReservationServicer
	Export       Exporter
	OpenAPI      []byte
	Log          *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		catalog:      d.Catalog,
		search:       d.Search,
		sessions:     d.Sessions,
		reservations: d.Reservations,
		export:       d.Export,
		openAPI:      d.OpenAPI,
		log:          log,
	}
}

// Routes returns the API router: the generated strict handler for every
// operation in spec/openapi.yaml plus the document itself. Cross-cutting
// middleware (request ids, logging, CORS, identity) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	if s.openAPI != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
		r.Get("/docs", s.GetDocs)
	}

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: s.responseErrorHandler,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: paramErrorHandler,
	})
}

package handler

import (
	"context"
	"fmt"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
)

// ListRegions handles GET /regions.
func (s *Server) ListRegions(_ context.Context, _ gen.ListRegionsRequestObject) (gen.ListRegionsResponseObject, error) {
	regions := s.catalog.ListRegions()
	out := make([]string, len(regions))
	for i, r := range regions {
		out[i] = string(r)
	}
	return gen.ListRegions200JSONResponse{Regions: out}, nil
}

// ListStations handles GET /regions/{region}/stations. Unknown regions
// yield an empty list rather than 404.
func (s *Server) ListStations(_ context.Context, req gen.ListStationsRequestObject) (gen.ListStationsResponseObject, error) {
	stations := s.catalog.StationsOf(domain.Region(req.Region))
	out := make([]gen.Station, len(stations))
	for i, st := range stations {
		out[i] = gen.Station{Id: string(st.ID), Name: st.Name, Region: string(st.Region), Small: st.Small}
	}
	return gen.ListStations200JSONResponse{Region: req.Region, Stations: out}, nil
}

// ResolveStation handles GET /stations/resolve?region=&name=.
func (s *Server) ResolveStation(_ context.Context, req gen.ResolveStationRequestObject) (gen.ResolveStationResponseObject, error) {
	region, name := req.Params.Region, req.Params.Name
	id, ok := s.catalog.ResolveStationID(domain.Region(region), name)
	if !ok {
		return gen.ResolveStation404JSONResponse(notFoundBody(fmt.Sprintf("no station %q in %s", name, region))), nil
	}
	return gen.ResolveStation200JSONResponse{Region: region, Name: name, StationId: string(id)}, nil
}

// ListTimeSlots handles GET /time-slots.
func (s *Server) ListTimeSlots(_ context.Context, _ gen.ListTimeSlotsRequestObject) (gen.ListTimeSlotsResponseObject, error) {
	return gen.ListTimeSlots200JSONResponse{Slots: domain.HalfHourSlots()}, nil
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/service"
)

// SearchSchedules handles POST /schedules/search.
func (s *Server) SearchSchedules(ctx context.Context, req gen.SearchSchedulesRequestObject) (gen.SearchSchedulesResponseObject, error) {
	b := req.Body
	mode, dir, err := parseMode(b.Mode, b.Date, b.Time, b.Direction)
	if err != nil {
		return gen.SearchSchedules422JSONResponse(validationBody(err)), nil
	}

	res, err := s.search.Search(ctx, service.SearchRequest{
		Origin:      stationRef(b.Origin),
		Destination: stationRef(b.Destination),
		Mode:        mode,
		Direction:   dir,
	})
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnprocessableEntity:
			return gen.SearchSchedules422JSONResponse(body), nil
		case http.StatusBadGateway:
			return gen.SearchSchedules502JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SearchSchedules200JSONResponse{
		Entries:   entriesToResponse(res.Collect()),
		Discarded: res.Discarded,
	}, nil
}

// parseMode converts the wire form into a search mode and direction.
func parseMode(mode string, date *openapi_types.Date, floor, direction *string) (domain.SearchMode, domain.Direction, error) {
	dir, err := domain.ParseDirection(deref(direction))
	if err != nil {
		return nil, "", err
	}
	switch mode {
	case "now":
		return domain.SearchNow{}, dir, nil
	case "scheduled":
		if date == nil {
			return nil, "", fmt.Errorf("%w: date is required for a scheduled search", domain.ErrValidation)
		}
		return domain.SearchScheduled{Date: date.Format(domain.DateLayout), Floor: deref(floor)}, dir, nil
	}
	return nil, "", fmt.Errorf("%w: mode must be \"now\" or \"scheduled\"", domain.ErrValidation)
}

func stationRef(r gen.StationRef) service.StationRef {
	return service.StationRef{
		ID:     domain.StationID(deref(r.Id)),
		Region: domain.Region(deref(r.Region)),
		Name:   deref(r.Name),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// wireDate converts a YYYY-MM-DD travel date; malformed dates become the
// zero Date.
func wireDate(s string) openapi_types.Date {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return openapi_types.Date{}
	}
	return openapi_types.Date{Time: d}
}

func entryToResponse(e domain.ScheduleEntry) gen.ScheduleEntry {
	return gen.ScheduleEntry{
		TripId:               e.TripID,
		TrainNumber:          e.TrainNumber,
		TrainType:            e.TrainType,
		TravelDate:           wireDate(e.TravelDate),
		OriginStationId:      string(e.OriginStationID),
		DestinationStationId: string(e.DestinationStationID),
		DepartureTime:        e.DepartureTime,
		ArrivalTime:          e.ArrivalTime,
		TerminalStationName:  e.TerminalStationName,
	}
}

func entriesToResponse(es []domain.ScheduleEntry) []gen.ScheduleEntry {
	out := make([]gen.ScheduleEntry, len(es))
	for i, e := range es {
		out[i] = entryToResponse(e)
	}
	return out
}

// entryFromRequest converts a client-supplied entry. A missing travel date
// stays empty so the service rejects it.
func entryFromRequest(e gen.ScheduleEntry) domain.ScheduleEntry {
	var date string
	if !e.TravelDate.IsZero() {
		date = e.TravelDate.Format(domain.DateLayout)
	}
	return domain.ScheduleEntry{
		TripID:               e.TripId,
		TrainNumber:          e.TrainNumber,
		TrainType:            e.TrainType,
		TravelDate:           date,
		OriginStationID:      domain.StationID(e.OriginStationId),
		DestinationStationID: domain.StationID(e.DestinationStationId),
		DepartureTime:        e.DepartureTime,
		ArrivalTime:          e.ArrivalTime,
		TerminalStationName:  e.TerminalStationName,
	}
}

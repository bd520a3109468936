package handler

import (
	"context"
	"net/http"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/identity"
	"github.com/stopbook/backend/internal/service"
)

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(ctx context.Context, req gen.CreateReservationRequestObject) (gen.CreateReservationResponseObject, error) {
	entry := entryFromRequest(req.Body.Entry)
	res, err := s.reservations.Create(ctx, riderOf(ctx), entry, domain.StationID(req.Body.StopStationId))
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.CreateReservation401JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.CreateReservation422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CreateReservation201JSONResponse(s.reservationToResponse(res, res.Status, false)), nil
}

// ListReservations handles GET /reservations.
func (s *Server) ListReservations(ctx context.Context, _ gen.ListReservationsRequestObject) (gen.ListReservationsResponseObject, error) {
	list, err := s.reservations.List(ctx, riderOf(ctx))
	if err != nil {
		if status, body := classify(ctx, err); status == http.StatusUnauthorized {
			return gen.ListReservations401JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ListReservations200JSONResponse{
		Upcoming:  s.viewsToResponse(list.Upcoming),
		Completed: s.viewsToResponse(list.Completed),
		Cancelled: s.viewsToResponse(list.Cancelled),
	}, nil
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(ctx context.Context, req gen.GetReservationRequestObject) (gen.GetReservationResponseObject, error) {
	v, err := s.reservations.Get(ctx, riderOf(ctx), req.Id)
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.GetReservation401JSONResponse(body), nil
		case http.StatusNotFound:
			return gen.GetReservation404JSONResponse(notFoundBody("reservation not found")), nil
		}
		return nil, err
	}
	return gen.GetReservation200JSONResponse(s.reservationToResponse(v.Reservation, v.Shown, v.ArrivingSoon)), nil
}

// CancelReservation handles POST /reservations/{id}/cancel.
func (s *Server) CancelReservation(ctx context.Context, req gen.CancelReservationRequestObject) (gen.CancelReservationResponseObject, error) {
	res, err := s.reservations.Cancel(ctx, riderOf(ctx), req.Id)
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.CancelReservation401JSONResponse(body), nil
		case http.StatusNotFound:
			return gen.CancelReservation404JSONResponse(notFoundBody("reservation not found")), nil
		case http.StatusConflict:
			return gen.CancelReservation409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CancelReservation200JSONResponse(s.reservationToResponse(res, res.Status, false)), nil
}

// AcknowledgeReservation handles POST /staff/reservations/{id}/acknowledge,
// the back office accepting a pending reservation. Only callers holding a
// staff token reach the service; rider identity plays no part.
func (s *Server) AcknowledgeReservation(ctx context.Context, req gen.AcknowledgeReservationRequestObject) (gen.AcknowledgeReservationResponseObject, error) {
	if !identity.IsStaff(ctx) {
		return gen.AcknowledgeReservation403JSONResponse(forbiddenBody()), nil
	}
	res, err := s.reservations.Acknowledge(ctx, req.Id)
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusNotFound:
			return gen.AcknowledgeReservation404JSONResponse(notFoundBody("reservation not found")), nil
		case http.StatusConflict:
			return gen.AcknowledgeReservation409JSONResponse(body), nil
		}
		return nil, err
	}
	staff, _ := identity.StaffID(ctx)
	s.log.InfoContext(ctx, "reservation acknowledged", "reservation_id", res.ID, "staff_id", staff)
	return gen.AcknowledgeReservation200JSONResponse(s.reservationToResponse(res, res.Status, false)), nil
}

func (s *Server) reservationToResponse(r domain.Reservation, shown domain.Status, soon bool) gen.Reservation {
	out := gen.Reservation{
		Id:                   r.ID,
		TripId:               r.TripID,
		StopStationId:        string(r.StopStationID),
		OriginStationId:      string(r.OriginStationID),
		DestinationStationId: string(r.DestinationStationID),
		TrainNumber:          r.TrainNumber,
		TrainType:            r.TrainType,
		TerminalStationName:  r.TerminalStationName,
		TravelDate:           wireDate(r.TravelDate),
		DepartureTime:        r.DepartureTime,
		ArrivalTime:          r.ArrivalTime,
		Status:               string(shown),
		ArrivingSoon:         soon,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if s.catalog != nil {
		if st, ok := s.catalog.Station(r.StopStationID); ok {
			out.StopStationName = &st.Name
		}
	}
	return out
}

func (s *Server) viewsToResponse(vs []service.ReservationView) []gen.Reservation {
	out := make([]gen.Reservation, len(vs))
	for i, v := range vs {
		out[i] = s.reservationToResponse(v.Reservation, v.Shown, v.ArrivingSoon)
	}
	return out
}

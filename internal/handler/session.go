package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/identity"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/session"
)

// riderOf returns the signed-in rider or "". The services turn "" into
// domain.ErrIncompleteContext, which classify reports as 401.
func riderOf(ctx context.Context) string {
	id, _ := identity.RiderID(ctx)
	return id
}

// UpdateSelection handles PUT /session/selection.
func (s *Server) UpdateSelection(ctx context.Context, req gen.UpdateSelectionRequestObject) (gen.UpdateSelectionResponseObject, error) {
	field, err := session.ParseField(req.Body.Field)
	if err != nil {
		return gen.UpdateSelection422JSONResponse(validationBody(err)), nil
	}
	sel, err := s.sessions.Select(ctx, riderOf(ctx), field, req.Body.Value)
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.UpdateSelection401JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.UpdateSelection422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.UpdateSelection200JSONResponse{
		OriginRegion:         string(sel.OriginRegion),
		OriginStation:        sel.OriginStation,
		OriginStationId:      string(sel.OriginStationID),
		DestinationRegion:    string(sel.DestinationRegion),
		DestinationStation:   sel.DestinationStation,
		DestinationStationId: string(sel.DestinationStationID),
	}, nil
}

// SessionSearch handles POST /session/search. A failed upstream query is
// reported as 502 with the upstream detail; the session itself is left
// resolved with zero results.
func (s *Server) SessionSearch(ctx context.Context, req gen.SessionSearchRequestObject) (gen.SessionSearchResponseObject, error) {
	b := req.Body
	mode, dir, err := parseMode(b.Mode, b.Date, b.Time, b.Direction)
	if err != nil {
		return gen.SessionSearch422JSONResponse(validationBody(err)), nil
	}
	snap, err := s.sessions.Search(ctx, riderOf(ctx), mode, dir)
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.SessionSearch401JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.SessionSearch422JSONResponse(body), nil
		case http.StatusBadGateway:
			return gen.SessionSearch502JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SessionSearch200JSONResponse(snapshotToResponse(snap)), nil
}

// SessionResults handles GET /session/results.
func (s *Server) SessionResults(ctx context.Context, _ gen.SessionResultsRequestObject) (gen.SessionResultsResponseObject, error) {
	snap, err := s.sessions.Results(ctx, riderOf(ctx))
	if err != nil {
		if status, body := classify(ctx, err); status == http.StatusUnauthorized {
			return gen.SessionResults401JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SessionResults200JSONResponse(snapshotToResponse(snap)), nil
}

// ChooseDraft handles POST /session/draft.
func (s *Server) ChooseDraft(ctx context.Context, req gen.ChooseDraftRequestObject) (gen.ChooseDraftResponseObject, error) {
	d, err := s.sessions.Choose(ctx, riderOf(ctx), req.Body.TripId, domain.StationID(req.Body.StopStationId))
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.ChooseDraft401JSONResponse(body), nil
		case http.StatusNotFound:
			return gen.ChooseDraft404JSONResponse(notFoundBody("trip is not among the current results")), nil
		case http.StatusUnprocessableEntity:
			return gen.ChooseDraft422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ChooseDraft200JSONResponse{
		Entry:         entryToResponse(d.Entry),
		StopStationId: string(d.StopStationID),
	}, nil
}

// DiscardDraft handles DELETE /session/draft.
func (s *Server) DiscardDraft(ctx context.Context, _ gen.DiscardDraftRequestObject) (gen.DiscardDraftResponseObject, error) {
	if err := s.sessions.Discard(ctx, riderOf(ctx)); err != nil {
		if status, body := classify(ctx, err); status == http.StatusUnauthorized {
			return gen.DiscardDraft401JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.DiscardDraft204Response{}, nil
}

// ConfirmDraft handles POST /session/draft/confirm.
func (s *Server) ConfirmDraft(ctx context.Context, _ gen.ConfirmDraftRequestObject) (gen.ConfirmDraftResponseObject, error) {
	res, err := s.sessions.Confirm(ctx, riderOf(ctx))
	if err != nil {
		switch status, body := classify(ctx, err); status {
		case http.StatusUnauthorized:
			return gen.ConfirmDraft401JSONResponse(body), nil
		case http.StatusUnprocessableEntity:
			return gen.ConfirmDraft422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ConfirmDraft201JSONResponse(s.reservationToResponse(res, res.Status, false)), nil
}

// snapshotToResponse renders the tri-state results view. Entries is null
// until a query has been issued and an array (possibly empty) once one
// resolved.
func snapshotToResponse(snap schedule.Snapshot) gen.Results {
	resp := gen.Results{State: string(snap.State), Seq: int64(snap.Seq)}
	if snap.Entries != nil {
		entries := entriesToResponse(snap.Entries)
		resp.Entries = &entries
	}
	if snap.Err != nil {
		var qe *domain.QueryError
		detail := snap.Err.Error()
		if errors.As(snap.Err, &qe) {
			detail = qe.Detail
		}
		resp.Error = &gen.ErrorDetail{Code: "query_failed", Message: detail}
	}
	return resp
}

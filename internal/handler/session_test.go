package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/session"
)

func scheduleEntry() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		TripID:               "2025-05-24/1254",
		TrainNumber:          "1254",
		TravelDate:           "2025-05-24",
		OriginStationID:      "0910",
		DestinationStationID: "1000",
		DepartureTime:        "14:05",
		ArrivalTime:          "14:25",
	}
}

func TestUpdateSelection(t *testing.T) {
	var gotRider, gotValue string
	var gotField session.Field
	svc := &mockSessions{selectFn: func(_ context.Context, rider string, f session.Field, v string) (session.Selection, error) {
		gotRider, gotField, gotValue = rider, f, v
		return session.Selection{OriginRegion: "基隆市"}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPut, "/session/selection",
		`{"field":"origin_region","value":"基隆市"}`, testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testRider, gotRider)
	assert.Equal(t, session.FieldOriginRegion, gotField)
	assert.Equal(t, "基隆市", gotValue)
	assert.Equal(t, "基隆市", decode[gen.Selection](t, rec).OriginRegion)
}

func TestUpdateSelection_UnknownField(t *testing.T) {
	called := false
	svc := &mockSessions{selectFn: func(context.Context, string, session.Field, string) (session.Selection, error) {
		called = true
		return session.Selection{}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPut, "/session/selection",
		`{"field":"seat","value":"12A"}`, testRider)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, called)
}

func TestUpdateSelection_WithoutRiderIsUnauthorized(t *testing.T) {
	gotRider := "unset"
	svc := &mockSessions{selectFn: func(_ context.Context, rider string, _ session.Field, _ string) (session.Selection, error) {
		gotRider = rider
		return session.Selection{}, fmt.Errorf("%w: login required", domain.ErrIncompleteContext)
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPut, "/session/selection",
		`{"field":"origin_region","value":"基隆市"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "login_required", errorCode(t, rec).Code)
	assert.Empty(t, gotRider)
}

func TestSessionResults_NotQueriedHasNullEntries(t *testing.T) {
	svc := &mockSessions{results: func(context.Context, string) (schedule.Snapshot, error) {
		return schedule.Snapshot{State: schedule.StateNotQueried}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodGet, "/session/results", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"not_queried","seq":0,"entries":null}`, rec.Body.String())
}

func TestSessionResults_ResolvedEmptyIsAnArray(t *testing.T) {
	svc := &mockSessions{results: func(context.Context, string) (schedule.Snapshot, error) {
		return schedule.Snapshot{State: schedule.StateResolved, Seq: 3, Entries: []domain.ScheduleEntry{}}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodGet, "/session/results", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"resolved","seq":3,"entries":[]}`, rec.Body.String())
}

func TestSessionResults_RetainedFailureIsReported(t *testing.T) {
	svc := &mockSessions{results: func(context.Context, string) (schedule.Snapshot, error) {
		return schedule.Snapshot{
			State:   schedule.StateResolved,
			Seq:     1,
			Entries: []domain.ScheduleEntry{},
			Err:     &domain.QueryError{Status: 503, Detail: "系統維護中"},
		}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodGet, "/session/results", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.Results](t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "query_failed", resp.Error.Code)
	assert.Equal(t, "系統維護中", resp.Error.Message)
}

func TestSessionSearch(t *testing.T) {
	var gotMode domain.SearchMode
	svc := &mockSessions{search: func(_ context.Context, _ string, mode domain.SearchMode, dir domain.Direction) (schedule.Snapshot, error) {
		gotMode = mode
		return schedule.Snapshot{State: schedule.StateResolved, Seq: 2, Entries: []domain.ScheduleEntry{scheduleEntry()}}, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPost, "/session/search",
		`{"mode":"scheduled","date":"2025-05-24"}`, testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SearchScheduled{Date: "2025-05-24"}, gotMode)
	resp := decode[gen.Results](t, rec)
	assert.Equal(t, string(schedule.StateResolved), resp.State)
	assert.EqualValues(t, 2, resp.Seq)
	require.NotNil(t, resp.Entries)
	require.Len(t, *resp.Entries, 1)
	assert.Equal(t, "2025-05-24", (*resp.Entries)[0].TravelDate.Format(domain.DateLayout))
	assert.Nil(t, resp.Error)
}

func TestSessionSearch_UpstreamFailure(t *testing.T) {
	qe := &domain.QueryError{Status: 400, Detail: "查詢日期超出可查詢範圍"}
	svc := &mockSessions{search: func(context.Context, string, domain.SearchMode, domain.Direction) (schedule.Snapshot, error) {
		return schedule.Snapshot{State: schedule.StateResolved, Entries: []domain.ScheduleEntry{}, Err: qe}, qe
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPost, "/session/search", `{"mode":"now"}`, testRider)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "查詢日期超出可查詢範圍", errorCode(t, rec).Message)
}

func TestChooseDraft(t *testing.T) {
	svc := &mockSessions{choose: func(_ context.Context, _ string, tripID string, stop domain.StationID) (session.Draft, error) {
		if tripID != "2025-05-24/1254" {
			return session.Draft{}, domain.ErrNotFound
		}
		return session.Draft{Entry: scheduleEntry(), StopStationID: stop}, nil
	}}
	d := handler.Deps{Sessions: svc}

	rec := do(t, d, http.MethodPost, "/session/draft", `{"trip_id":"2025-05-24/1254","stop_station_id":"0910"}`, testRider)
	require.Equal(t, http.StatusOK, rec.Code)
	draft := decode[gen.Draft](t, rec)
	assert.Equal(t, "0910", draft.StopStationId)
	assert.Equal(t, "1254", draft.Entry.TrainNumber)

	rec = do(t, d, http.MethodPost, "/session/draft", `{"trip_id":"2025-05-24/9999","stop_station_id":"0910"}`, testRider)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec).Code)
}

func TestDiscardDraft(t *testing.T) {
	discarded := false
	svc := &mockSessions{discard: func(context.Context, string) error {
		discarded = true
		return nil
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodDelete, "/session/draft", "", testRider)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, discarded)
}

func TestConfirmDraft(t *testing.T) {
	svc := &mockSessions{confirm: func(_ context.Context, rider string) (domain.Reservation, error) {
		r := reservationFixture()
		r.RiderID = rider
		return r, nil
	}}

	rec := do(t, handler.Deps{Sessions: svc, Catalog: testCatalog(t)}, http.MethodPost, "/session/draft/confirm", "", testRider)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[gen.Reservation](t, rec)
	assert.Equal(t, fixtureID, got.Id)
	assert.Equal(t, string(domain.StatusPending), got.Status)
	require.NotNil(t, got.StopStationName)
	assert.Equal(t, "三坑", *got.StopStationName)
	assert.Equal(t, "2025-05-24", got.TravelDate.Format(domain.DateLayout))
}

func TestConfirmDraft_NothingToConfirm(t *testing.T) {
	svc := &mockSessions{confirm: func(context.Context, string) (domain.Reservation, error) {
		return domain.Reservation{}, fmt.Errorf("%w: no train selected", domain.ErrIncompleteContext)
	}}

	rec := do(t, handler.Deps{Sessions: svc}, http.MethodPost, "/session/draft/confirm", "", testRider)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "incomplete_context", errorCode(t, rec).Code)
}

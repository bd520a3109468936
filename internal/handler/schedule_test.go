package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler"
	"github.com/stopbook/backend/internal/handler/gen"
	"github.com/stopbook/backend/internal/schedule"
	"github.com/stopbook/backend/internal/service"
)

type sourceFunc func(ctx context.Context, req schedule.Request) ([]schedule.RawTrip, error)

func (f sourceFunc) Lookup(ctx context.Context, req schedule.Request) ([]schedule.RawTrip, error) {
	return f(ctx, req)
}

func rawTrip(no, dep, arr string) schedule.RawTrip {
	var r schedule.RawTrip
	r.TrainDate = "2025-05-24"
	r.DailyTrainInfo.TrainNo = no
	r.DailyTrainInfo.EndingStationName.ZhTw = "花蓮"
	r.OriginStopTime.StationID = "0910"
	r.OriginStopTime.DepartureTime = dep
	r.DestinationStopTime.StationID = "1000"
	r.DestinationStopTime.ArrivalTime = arr
	return r
}

// shapedResult runs trips through a real Shaper so the handler sees a
// realistic Result.
func shapedResult(t *testing.T, q schedule.Query, trips ...schedule.RawTrip) schedule.Result {
	t.Helper()
	dirs, err := schedule.LoadDirections()
	require.NoError(t, err)
	src := sourceFunc(func(context.Context, schedule.Request) ([]schedule.RawTrip, error) { return trips, nil })
	shaper := schedule.NewShaper(src, testCatalog(t), dirs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	res, err := shaper.Query(context.Background(), q)
	require.NoError(t, err)
	return res
}

func TestSearchSchedules_ScheduledRequest(t *testing.T) {
	var got service.SearchRequest
	svc := &mockSearcher{search: func(_ context.Context, req service.SearchRequest) (schedule.Result, error) {
		got = req
		return shapedResult(t,
			schedule.Query{Origin: "0910", Destination: "1000", Date: "2025-05-24", Floor: "15:00"},
			rawTrip("1258", "15:45", "16:05"),
			rawTrip("1254", "14:05", "14:25"),
			rawTrip("1256", "15:10", "15:30"),
		), nil
	}}
	body := `{"origin":{"id":"0910"},"destination":{"region":"台北市","name":"臺北"},` +
		`"mode":"scheduled","date":"2025-05-24","time":"15:00","direction":"inbound"}`

	rec := do(t, handler.Deps{Search: svc}, http.MethodPost, "/schedules/search", body, "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, service.SearchRequest{
		Origin:      service.StationRef{ID: "0910"},
		Destination: service.StationRef{Region: "台北市", Name: "臺北"},
		Mode:        domain.SearchScheduled{Date: "2025-05-24", Floor: "15:00"},
		Direction:   domain.DirectionInbound,
	}, got)

	resp := decode[gen.SearchResult](t, rec)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "1256", resp.Entries[0].TrainNumber)
	assert.Equal(t, "1258", resp.Entries[1].TrainNumber)
}

func TestSearchSchedules_NowModeDefaultsToAllDirections(t *testing.T) {
	var got service.SearchRequest
	svc := &mockSearcher{search: func(_ context.Context, req service.SearchRequest) (schedule.Result, error) {
		got = req
		return schedule.Result{}, nil
	}}

	rec := do(t, handler.Deps{Search: svc}, http.MethodPost, "/schedules/search",
		`{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"now"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SearchNow{}, got.Mode)
	assert.Equal(t, domain.DirectionAll, got.Direction)
	assert.JSONEq(t, `{"entries":[],"discarded":0}`, rec.Body.String())
}

func TestSearchSchedules_RejectedBeforeSearch(t *testing.T) {
	cases := map[string]string{
		"scheduled without date": `{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"scheduled"}`,
		"unknown mode":           `{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"later"}`,
		"unknown direction":      `{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"now","direction":"up"}`,
		"malformed date":         `{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"scheduled","date":"24/05/2025"}`,
		"not json":               `mode=now`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			called := false
			svc := &mockSearcher{search: func(context.Context, service.SearchRequest) (schedule.Result, error) {
				called = true
				return schedule.Result{}, nil
			}}

			rec := do(t, handler.Deps{Search: svc}, http.MethodPost, "/schedules/search", body, "")

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestSearchSchedules_UpstreamFailureCarriesDetail(t *testing.T) {
	svc := &mockSearcher{search: func(context.Context, service.SearchRequest) (schedule.Result, error) {
		return schedule.Result{}, &domain.QueryError{Status: 400, Detail: "查詢日期超出可查詢範圍"}
	}}

	rec := do(t, handler.Deps{Search: svc}, http.MethodPost, "/schedules/search",
		`{"origin":{"id":"0910"},"destination":{"id":"1000"},"mode":"now"}`, "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	detail := errorCode(t, rec)
	assert.Equal(t, "query_failed", detail.Code)
	assert.Equal(t, "查詢日期超出可查詢範圍", detail.Message)
}

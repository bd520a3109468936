package handler_test

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler"
	"github.com/stopbook/backend/internal/handler/gen"
)

func exportDeps(exp handler.Exporter) handler.Deps {
	return handler.Deps{Export: exp}
}

// exportRowFixture returns a fully-populated domain.ExportRow for testing.
func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		ReservationID:       fixtureID.String(),
		TravelDate:          "2025-05-24",
		TrainNumber:         "1254",
		TrainType:           "區間車",
		DepartureTime:       "14:05",
		ArrivalTime:         "14:25",
		OriginStation:       "三坑",
		DestinationStation:  "臺北",
		StopStation:         "三坑",
		TerminalStationName: "花蓮",
		Status:              domain.StatusConfirmed,
		CreatedAt:           time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
	}
}

func TestExportReservations_DefaultJSON_EmptyResult(t *testing.T) {
	exp := &mockExporter{export: func(context.Context, string) ([]domain.ExportRow, error) {
		return []domain.ExportRow{}, nil
	}}

	rec := do(t, exportDeps(exp), http.MethodGet, "/reservations/export", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestExportReservations_JSON(t *testing.T) {
	var gotRider string
	exp := &mockExporter{export: func(_ context.Context, rider string) ([]domain.ExportRow, error) {
		gotRider = rider
		return []domain.ExportRow{exportRowFixture()}, nil
	}}

	rec := do(t, exportDeps(exp), http.MethodGet, "/reservations/export?format=json", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testRider, gotRider)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reservations.json")
	rows := decode[[]gen.ExportRow](t, rec)
	require.Len(t, rows, 1)
	want := exportRowFixture()
	assert.Equal(t, fixtureID, rows[0].ReservationId)
	assert.Equal(t, want.TravelDate, rows[0].TravelDate.Format(domain.DateLayout))
	assert.Equal(t, want.StopStation, rows[0].StopStation)
	assert.Equal(t, want.TerminalStationName, rows[0].TerminalStationName)
	assert.Equal(t, string(want.Status), rows[0].Status)
	assert.True(t, want.CreatedAt.Equal(rows[0].CreatedAt))
}

func TestExportReservations_CSV(t *testing.T) {
	exp := &mockExporter{export: func(context.Context, string) ([]domain.ExportRow, error) {
		return []domain.ExportRow{exportRowFixture()}, nil
	}}

	rec := do(t, exportDeps(exp), http.MethodGet, "/reservations/export?format=csv", "", testRider)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reservations.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row")
	assert.Equal(t, "reservation_id", records[0][0])
	assert.Equal(t, []string{
		fixtureID.String(), "2025-05-24", "1254", "區間車", "14:05", "14:25",
		"三坑", "臺北", "三坑", "花蓮", "confirmed", "2025-05-20T08:00:00Z",
	}, records[1])
}

func TestExportReservations_UnknownFormat(t *testing.T) {
	called := false
	exp := &mockExporter{export: func(context.Context, string) ([]domain.ExportRow, error) {
		called = true
		return nil, nil
	}}

	rec := do(t, exportDeps(exp), http.MethodGet, "/reservations/export?format=xml", "", testRider)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec).Code)
	assert.False(t, called)
}

func TestExportReservations_RequiresLogin(t *testing.T) {
	exp := &mockExporter{export: func(_ context.Context, rider string) ([]domain.ExportRow, error) {
		return nil, fmt.Errorf("service.ExportService.Export: %w: login required", domain.ErrIncompleteContext)
	}}

	rec := do(t, exportDeps(exp), http.MethodGet, "/reservations/export", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/service"
)

func TestExportService_Export(t *testing.T) {
	r := newMemRepo()
	clock := morningClock()
	reservations := newReservationService(t, r, clock)
	ctx := context.Background()

	afternoon, err := reservations.Create(ctx, "U1", sankengToTaipei(), "0910")
	require.NoError(t, err)
	_, err = reservations.Acknowledge(ctx, afternoon.ID)
	require.NoError(t, err)

	morning := sankengToTaipei()
	morning.TripID = "2025-05-24/1240"
	morning.TrainNumber = "1240"
	morning.DepartureTime = "10:00"
	morning.ArrivalTime = "10:20"
	_, err = reservations.Create(ctx, "U1", morning, "0910")
	require.NoError(t, err)

	_, err = reservations.Create(ctx, "U2", sankengToTaipei(), "0910")
	require.NoError(t, err)

	clock.Set(time.Date(2025, 5, 24, 15, 0, 0, 0, taipei))
	svc := service.NewExportService(r, loadCatalog(t), taipei, clock.Now)

	rows, err := svc.Export(ctx, "U1")

	require.NoError(t, err)
	require.Len(t, rows, 2, "only the rider's own reservations")

	assert.Equal(t, "1240", rows[0].TrainNumber)
	assert.Equal(t, domain.StatusPending, rows[0].Status)

	assert.Equal(t, afternoon.ID.String(), rows[1].ReservationID)
	assert.Equal(t, domain.StatusCompleted, rows[1].Status, "confirmed and departed")
	assert.Equal(t, "三坑", rows[1].OriginStation)
	assert.Equal(t, "臺北", rows[1].DestinationStation)
	assert.Equal(t, "三坑", rows[1].StopStation)
	assert.Equal(t, "花蓮", rows[1].TerminalStationName)
}

func TestExportService_Export_UnknownStationKeepsID(t *testing.T) {
	r := newMemRepo()
	_, err := r.Create(context.Background(), domain.Reservation{
		RiderID:              "U1",
		StopStationID:        "9999",
		OriginStationID:      "0910",
		DestinationStationID: "1000",
		TrainNumber:          "1254",
		TravelDate:           "2025-05-24",
		DepartureTime:        "14:05",
		Status:               domain.StatusPending,
	})
	require.NoError(t, err)
	svc := service.NewExportService(r, loadCatalog(t), taipei, morningClock().Now)

	rows, err := svc.Export(context.Background(), "U1")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "9999", rows[0].StopStation)
}

func TestExportService_Export_Empty(t *testing.T) {
	svc := service.NewExportService(newMemRepo(), loadCatalog(t), taipei, morningClock().Now)

	rows, err := svc.Export(context.Background(), "U1")

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RequiresRider(t *testing.T) {
	svc := service.NewExportService(newMemRepo(), loadCatalog(t), taipei, morningClock().Now)

	_, err := svc.Export(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrIncompleteContext)
}

func TestExportService_Export_WrapsRepoErrors(t *testing.T) {
	boom := errors.New("disk full")
	svc := service.NewExportService(&failingRepo{err: boom}, loadCatalog(t), taipei, morningClock().Now)

	_, err := svc.Export(context.Background(), "U1")

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "service.ExportService.Export")
}

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/repo"
)

// ExportService flattens a rider's reservations into rows for download.
type ExportService struct {
	repo     repo.ReservationRepo
	stations StationLookup
	now      func() time.Time
	loc      *time.Location
}

// NewExportService constructs an ExportService. loc is the service time zone
// used to classify reservations.
func NewExportService(r repo.ReservationRepo, stations StationLookup, loc *time.Location, now func() time.Time) *ExportService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &ExportService{repo: r, stations: stations, now: now, loc: loc}
}

// Export returns one row per reservation of riderID, ordered by travel date
// and departure time. Station ids missing from the catalog are exported as
// the raw id.
func (s *ExportService) Export(ctx context.Context, riderID string) ([]domain.ExportRow, error) {
	if riderID == "" {
		return nil, fmt.Errorf("service.ExportService.Export: %w: login required", domain.ErrIncompleteContext)
	}
	rs, err := s.repo.ListByRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	slices.SortStableFunc(rs, func(a, b domain.Reservation) int {
		if a.TravelDate != b.TravelDate {
			return cmp.Compare(a.TravelDate, b.TravelDate)
		}
		return cmp.Compare(a.DepartureTime, b.DepartureTime)
	})

	now := s.now().In(s.loc)
	rows := make([]domain.ExportRow, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, domain.ExportRow{
			ReservationID:       r.ID.String(),
			TravelDate:          r.TravelDate,
			TrainNumber:         r.TrainNumber,
			TrainType:           r.TrainType,
			DepartureTime:       r.DepartureTime,
			ArrivalTime:         r.ArrivalTime,
			OriginStation:       s.stationName(r.OriginStationID),
			DestinationStation:  s.stationName(r.DestinationStationID),
			StopStation:         s.stationName(r.StopStationID),
			TerminalStationName: r.TerminalStationName,
			Status:              domain.Classify(r, now),
			CreatedAt:           r.CreatedAt,
		})
	}
	return rows, nil
}

func (s *ExportService) stationName(id domain.StationID) string {
	if st, ok := s.stations.Station(id); ok {
		return st.Name
	}
	return string(id)
}

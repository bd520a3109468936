package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/handler/gen"
)

// Exporter flattens a rider's reservations for download.
type Exporter interface {
	Export(ctx context.Context, riderID string) ([]domain.ExportRow, error)
}

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"reservation_id", "travel_date", "train_number", "train_type",
	"departure_time", "arrival_time", "origin_station", "destination_station",
	"stop_station", "terminal_station", "status", "created_at",
}

// ExportReservations handles GET /reservations/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportReservations(ctx context.Context, req gen.ExportReservationsRequestObject) (gen.ExportReservationsResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	if format != gen.Csv && format != gen.Json {
		return gen.ExportReservations422JSONResponse(requestBody("format must be csv or json")), nil
	}

	rows, err := s.export.Export(ctx, riderOf(ctx))
	if err != nil {
		if status, body := classify(ctx, err); status == http.StatusUnauthorized {
			return gen.ExportReservations401JSONResponse(body), nil
		}
		return nil, err
	}

	if format == gen.Csv {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.ExportReservations200JSONResponse {
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return gen.ExportReservations200JSONResponse{
		Body:    out,
		Headers: gen.ExportReservations200ResponseHeaders{ContentDisposition: `attachment; filename="reservations.json"`},
	}
}

// buildCSVResponse encodes rows as CSV with a header line.
func buildCSVResponse(rows []domain.ExportRow) gen.ExportReservations200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(rowToCSVRecord(r))
	}
	w.Flush()

	return gen.ExportReservations200TextcsvResponse{
		Body:          &buf,
		Headers:       gen.ExportReservations200ResponseHeaders{ContentDisposition: `attachment; filename="reservations.csv"`},
		ContentLength: int64(buf.Len()),
	}
}

func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	id, _ := uuid.Parse(r.ReservationID)
	return gen.ExportRow{
		ReservationId:       id,
		TravelDate:          wireDate(r.TravelDate),
		TrainNumber:         r.TrainNumber,
		TrainType:           r.TrainType,
		DepartureTime:       r.DepartureTime,
		ArrivalTime:         r.ArrivalTime,
		OriginStation:       r.OriginStation,
		DestinationStation:  r.DestinationStation,
		StopStation:         r.StopStation,
		TerminalStationName: r.TerminalStationName,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
	}
}

func rowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.ReservationID,
		r.TravelDate,
		r.TrainNumber,
		r.TrainType,
		r.DepartureTime,
		r.ArrivalTime,
		r.OriginStation,
		r.DestinationStation,
		r.StopStation,
		r.TerminalStationName,
		string(r.Status),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

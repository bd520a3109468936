// Package repo contains all database access logic for reservations.
// The ReservationRepo interface has a Postgres implementation for hosted
// deployments and a SQLite implementation for single-node ones.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/stopbook/backend/internal/domain"
)

// ErrStaleStatus is returned by UpdateStatus when the reservation exists but
// its stored status is no longer one of the expected prior statuses.
var ErrStaleStatus = errors.New("reservation status changed concurrently")

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReservationRepo defines the persistence operations for Reservations.
// Reservations are never deleted.
type ReservationRepo interface {
	// Create inserts a new reservation and returns the persisted record with
	// id, created_at and updated_at populated.
	Create(ctx context.Context, r domain.Reservation) (domain.Reservation, error)

	// GetByID returns domain.ErrNotFound if no reservation has that id.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)

	// ListByRider returns the rider's reservations ordered by travel date and
	// departure time.
	ListByRider(ctx context.Context, riderID string) ([]domain.Reservation, error)

	// UpdateStatus sets the status to `to` only if the stored status is one
	// of from. It returns domain.ErrNotFound for an unknown id and
	// ErrStaleStatus when the stored status did not match.
	UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (domain.Reservation, error)
}

const reservationColumns = `id, rider_id, trip_id, stop_station_id, origin_station_id,
		destination_station_id, train_number, train_type, terminal_station_name,
		travel_date, departure_time, arrival_time, status, created_at, updated_at`

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (rider_id, trip_id, stop_station_id, origin_station_id,
			destination_station_id, train_number, train_type, terminal_station_name,
			travel_date, departure_time, arrival_time, status)
		VALUES (@rider_id, @trip_id, @stop_station_id, @origin_station_id,
			@destination_station_id, @train_number, @train_type, @terminal_station_name,
			@travel_date, @departure_time, @arrival_time, @status)
		RETURNING ` + reservationColumns

	args := pgx.NamedArgs{
		"rider_id":               res.RiderID,
		"trip_id":                res.TripID,
		"stop_station_id":        string(res.StopStationID),
		"origin_station_id":      string(res.OriginStationID),
		"destination_station_id": string(res.DestinationStationID),
		"train_number":           res.TrainNumber,
		"train_type":             res.TrainType,
		"terminal_station_name":  res.TerminalStationName,
		"travel_date":            res.TravelDate,
		"departure_time":         res.DepartureTime,
		"arrival_time":           res.ArrivalTime,
		"status":                 string(res.Status),
	}

	got, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
	}
	return got, nil
}

func (r *pgReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = @id`

	got, err := scanReservation(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return got, nil
}

func (r *pgReservationRepo) ListByRider(ctx context.Context, riderID string) ([]domain.Reservation, error) {
	q := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE rider_id = @rider_id
		ORDER BY travel_date, departure_time, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"rider_id": riderID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByRider: %w", err)
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListByRider: scan: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByRider: rows: %w", err)
	}
	return out, nil
}

func (r *pgReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (domain.Reservation, error) {
	q := `
		UPDATE reservations
		SET status     = @to,
		    updated_at = now()
		WHERE id = @id AND status = ANY(@from)
		RETURNING ` + reservationColumns

	args := pgx.NamedArgs{
		"id":   id,
		"to":   string(to),
		"from": statusStrings(from),
	}

	got, err := scanReservation(r.db.QueryRow(ctx, q, args))
	if errors.Is(err, domain.ErrNotFound) {
		// Nothing matched: either the id is unknown or the status moved on.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.UpdateStatus: %w", getErr)
		}
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.UpdateStatus: %w", ErrStaleStatus)
	}
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.UpdateStatus: %w", err)
	}
	return got, nil
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanReservation maps a single Postgres row into a domain.Reservation.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res                           domain.Reservation
		id                            pgtype.UUID
		travelDate                    pgtype.Date
		stop, origin, dest, statusRaw string
	)

	err := s.Scan(&id, &res.RiderID, &res.TripID, &stop, &origin, &dest,
		&res.TrainNumber, &res.TrainType, &res.TerminalStationName,
		&travelDate, &res.DepartureTime, &res.ArrivalTime, &statusRaw,
		&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	res.ID = uuid.UUID(id.Bytes)
	res.StopStationID = domain.StationID(stop)
	res.OriginStationID = domain.StationID(origin)
	res.DestinationStationID = domain.StationID(dest)
	res.TravelDate = travelDate.Time.Format(domain.DateLayout)
	res.Status = domain.Status(statusRaw)
	return res, nil
}

func statusStrings(ss []domain.Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}

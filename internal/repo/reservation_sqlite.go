package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/stopbook/backend/internal/domain"
)

// sqliteReservationRepo is the SQLite implementation of ReservationRepo.
// Ids and timestamps are generated here since SQLite has no equivalent of
// gen_random_uuid() or timestamptz.
type sqliteReservationRepo struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	// One writer at a time; avoids SQLITE_BUSY under concurrent mutations.
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewSQLiteReservationRepo constructs a ReservationRepo backed by SQLite.
func NewSQLiteReservationRepo(db *sql.DB) ReservationRepo {
	return &sqliteReservationRepo{db: db, now: time.Now}
}

func (r *sqliteReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (id, rider_id, trip_id, stop_station_id, origin_station_id,
			destination_station_id, train_number, train_type, terminal_station_name,
			travel_date, departure_time, arrival_time, status, created_at, updated_at)
		VALUES (:id, :rider_id, :trip_id, :stop_station_id, :origin_station_id,
			:destination_station_id, :train_number, :train_type, :terminal_station_name,
			:travel_date, :departure_time, :arrival_time, :status, :now, :now)
		RETURNING ` + reservationColumns

	row := r.db.QueryRowContext(ctx, q,
		sql.Named("id", uuid.New().String()),
		sql.Named("rider_id", res.RiderID),
		sql.Named("trip_id", res.TripID),
		sql.Named("stop_station_id", string(res.StopStationID)),
		sql.Named("origin_station_id", string(res.OriginStationID)),
		sql.Named("destination_station_id", string(res.DestinationStationID)),
		sql.Named("train_number", res.TrainNumber),
		sql.Named("train_type", res.TrainType),
		sql.Named("terminal_station_name", res.TerminalStationName),
		sql.Named("travel_date", res.TravelDate),
		sql.Named("departure_time", res.DepartureTime),
		sql.Named("arrival_time", res.ArrivalTime),
		sql.Named("status", string(res.Status)),
		sql.Named("now", r.timestamp()),
	)
	got, err := scanSQLiteReservation(row)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
	}
	return got, nil
}

func (r *sqliteReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = :id`

	got, err := scanSQLiteReservation(r.db.QueryRowContext(ctx, q, sql.Named("id", id.String())))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return got, nil
}

func (r *sqliteReservationRepo) ListByRider(ctx context.Context, riderID string) ([]domain.Reservation, error) {
	q := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE rider_id = :rider_id
		ORDER BY travel_date, departure_time, created_at`

	rows, err := r.db.QueryContext(ctx, q, sql.Named("rider_id", riderID))
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListByRider: %w", err)
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		res, err := scanSQLiteReservation(rows)
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

func (r *sqliteReservationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (domain.Reservation, error) {
	if len(from) == 0 {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.UpdateStatus: %w", ErrStaleStatus)
	}

	args := []any{
		sql.Named("id", id.String()),
		sql.Named("to", string(to)),
		sql.Named("now", r.timestamp()),
	}
	placeholders := make([]string, len(from))
	for i, s := range from {
		name := fmt.Sprintf("from%d", i)
		placeholders[i] = ":" + name
		args = append(args, sql.Named(name, string(s)))
	}

	q := `
		UPDATE reservations
		SET status     = :to,
		    updated_at = :now
		WHERE id = :id AND status IN (` + strings.Join(placeholders, ", ") + `)
		RETURNING ` + reservationColumns

	got, err := scanSQLiteReservation(r.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, domain.ErrNotFound) {
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

func (r *sqliteReservationRepo) timestamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}

// scanSQLiteReservation maps a single SQLite row into a domain.Reservation.
// Ids and timestamps are stored as text.
func scanSQLiteReservation(s scanner) (domain.Reservation, error) {
	var (
		res                               domain.Reservation
		id, stop, origin, dest, statusRaw string
		createdAt, updatedAt              string
	)

	err := s.Scan(&id, &res.RiderID, &res.TripID, &stop, &origin, &dest,
		&res.TrainNumber, &res.TrainType, &res.TerminalStationName,
		&res.TravelDate, &res.DepartureTime, &res.ArrivalTime, &statusRaw,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	if res.ID, err = uuid.Parse(id); err != nil {
		return domain.Reservation{}, fmt.Errorf("parse id: %w", err)
	}
	if res.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Reservation{}, fmt.Errorf("parse created_at: %w", err)
	}
	if res.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return domain.Reservation{}, fmt.Errorf("parse updated_at: %w", err)
	}
	res.StopStationID = domain.StationID(stop)
	res.OriginStationID = domain.StationID(origin)
	res.DestinationStationID = domain.StationID(dest)
	res.Status = domain.Status(statusRaw)
	return res, nil
}

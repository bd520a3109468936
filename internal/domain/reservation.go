package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a Reservation.
type Status string

const (
	StatusPending   Status = "pending"   // submitted, awaiting acknowledgment
	StatusConfirmed Status = "confirmed" // acknowledged for the train and stop station
	StatusCompleted Status = "completed" // derived at read time, never stored
	StatusCancelled Status = "cancelled" // terminal
)

// Reservation is a rider's request for train TrainNumber to stop at
// StopStationID on TravelDate. Reservations are never deleted; cancellation
// is a status change. RiderID is immutable after creation.
type Reservation struct {
	ID                   uuid.UUID
	RiderID              string
	TripID               string
	StopStationID        StationID
	OriginStationID      StationID
	DestinationStationID StationID
	TrainNumber          string
	TrainType            string
	TerminalStationName  string
	TravelDate           string // "2006-01-02"
	DepartureTime        string // "15:04"
	ArrivalTime          string // "15:04"
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Departure returns the departure instant in loc. ok is false when the stored
// date or time cannot be parsed.
func (r Reservation) Departure(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, r.TravelDate+" "+r.DepartureTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Classify returns the status a reservation is presented with at now. A
// Confirmed reservation whose departure is strictly before now is Completed.
// The travel date and departure time are interpreted in now's location.
// Classify is pure and never modifies r.
func Classify(r Reservation, now time.Time) Status {
	if r.Status != StatusConfirmed {
		return r.Status
	}
	dep, ok := r.Departure(now.Location())
	if ok && dep.Before(now) {
		return StatusCompleted
	}
	return StatusConfirmed
}

// ArrivingSoon reports whether a Confirmed, not yet completed reservation
// departs within window of now.
func ArrivingSoon(r Reservation, now time.Time, window time.Duration) bool {
	if Classify(r, now) != StatusConfirmed || window <= 0 {
		return false
	}
	dep, ok := r.Departure(now.Location())
	return ok && !dep.After(now.Add(window))
}

// ReservationList is a rider's reservations partitioned by classified status.
type ReservationList struct {
	Upcoming  []Reservation
	Completed []Reservation
	Cancelled []Reservation
}

// Partition splits reservations by Classify at now. Upcoming is ordered by
// travel date and departure time ascending; Completed and Cancelled most
// recent first. Every partition is non-nil.
func Partition(reservations []Reservation, now time.Time) ReservationList {
	out := ReservationList{
		Upcoming:  []Reservation{},
		Completed: []Reservation{},
		Cancelled: []Reservation{},
	}
	for _, r := range reservations {
		switch Classify(r, now) {
		case StatusCompleted:
			out.Completed = append(out.Completed, r)
		case StatusCancelled:
			out.Cancelled = append(out.Cancelled, r)
		default:
			out.Upcoming = append(out.Upcoming, r)
		}
	}
	slices.SortStableFunc(out.Upcoming, compareSchedule)
	slices.SortStableFunc(out.Completed, func(a, b Reservation) int { return compareSchedule(b, a) })
	slices.SortStableFunc(out.Cancelled, func(a, b Reservation) int { return compareSchedule(b, a) })
	return out
}

// compareSchedule orders by travel date then departure time. Both fields are
// fixed-width, so string comparison is chronological.
func compareSchedule(a, b Reservation) int {
	if c := cmp.Compare(a.TravelDate, b.TravelDate); c != 0 {
		return c
	}
	return cmp.Compare(a.DepartureTime, b.DepartureTime)
}

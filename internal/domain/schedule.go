package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

// ClockLayout is the zero-padded 24-hour time-of-day format. Lexical order of
// strings in this format equals chronological order within one day, which is
// what the time-floor filter and sorting rely on.
const ClockLayout = "15:04"

// ScheduleEntry is one normalized train trip between an origin and a
// destination on a travel date. Entries are immutable once shaped.
type ScheduleEntry struct {
	TripID               string    `json:"trip_id"`
	TrainNumber          string    `json:"train_number"`
	TrainType            string    `json:"train_type,omitempty"`
	TravelDate           string    `json:"travel_date"`
	OriginStationID      StationID `json:"origin_station_id"`
	DestinationStationID StationID `json:"destination_station_id"`
	DepartureTime        string    `json:"departure_time"`
	ArrivalTime          string    `json:"arrival_time"`
	TerminalStationName  string    `json:"terminal_station_name,omitempty"`
}

// IsZero reports whether e carries no trip at all.
func (e ScheduleEntry) IsZero() bool {
	return e.TripID == "" && e.TrainNumber == ""
}

// Direction is the rider-selected travel direction filter.
type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionOutbound Direction = "outbound" // 順行, clockwise
	DirectionInbound  Direction = "inbound"  // 逆行, counterclockwise
)

// ParseDirection maps rider input to a Direction. Empty input means all.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionAll:
		return DirectionAll, nil
	case DirectionOutbound, DirectionInbound:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrValidation, s)
}

// SearchMode selects how the travel date and time floor are determined.
// It is either SearchNow or SearchScheduled; no other implementations exist.
type SearchMode interface {
	searchMode()
}

// SearchNow ("book now") derives the date and floor from the wall clock at
// query time.
type SearchNow struct{}

// SearchScheduled uses a rider-chosen date and an optional time floor.
// An empty Floor means no floor.
type SearchScheduled struct {
	Date  string
	Floor string
}

func (SearchNow) searchMode()       {}
func (SearchScheduled) searchMode() {}

// ResolveMode returns the travel date and time floor for mode. now must
// already be expressed in the service time zone.
func ResolveMode(mode SearchMode, now time.Time) (date, floor string, err error) {
	switch m := mode.(type) {
	case SearchNow:
		return now.Format(DateLayout), now.Format(ClockLayout), nil
	case SearchScheduled:
		if err := ValidateDate(m.Date); err != nil {
			return "", "", err
		}
		if m.Floor != "" {
			if err := ValidateClock(m.Floor); err != nil {
				return "", "", err
			}
		}
		return m.Date, m.Floor, nil
	case nil:
		return "", "", fmt.Errorf("%w: search mode is required", ErrValidation)
	}
	return "", "", fmt.Errorf("%w: unsupported search mode %T", ErrValidation, mode)
}

// ValidateDate checks that s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if s == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, s)
	}
	return nil
}

// ValidateClock checks that s is a zero-padded HH:MM time of day.
func ValidateClock(s string) error {
	if !IsClock(s) {
		return fmt.Errorf("%w: time must be HH:MM, got %q", ErrValidation, s)
	}
	return nil
}

// IsClock reports whether s is exactly a zero-padded HH:MM time of day.
func IsClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// HalfHourSlots returns the 48 time-floor choices offered to riders,
// 00:00 through 23:30.
func HalfHourSlots() []string {
	slots := make([]string, 0, 48)
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

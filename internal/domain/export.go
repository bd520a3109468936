package domain

import "time"

// ExportRow is one reservation flattened for download. Station columns carry
// display names; Status is the classified status at export time.
type ExportRow struct {
	ReservationID       string    `json:"reservation_id"`
	TravelDate          string    `json:"travel_date"`
	TrainNumber         string    `json:"train_number"`
	TrainType           string    `json:"train_type,omitempty"`
	DepartureTime       string    `json:"departure_time"`
	ArrivalTime         string    `json:"arrival_time"`
	OriginStation       string    `json:"origin_station"`
	DestinationStation  string    `json:"destination_station"`
	StopStation         string    `json:"stop_station"`
	TerminalStationName string    `json:"terminal_station_name,omitempty"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

package schedule

import (
	"errors"
	"fmt"

	"github.com/stopbook/backend/internal/domain"
)

// Request is the body sent to the schedule service.
type Request struct {
	Start domain.StationID `json:"start"`
	End   domain.StationID `json:"end"`
	Date  string           `json:"time"`
}

// localizedName is the service's bilingual name object.
type localizedName struct {
	ZhTw string `json:"Zh_tw"`
	En   string `json:"En,omitempty"`
}

type stopTime struct {
	StationID     string        `json:"StationID"`
	StationName   localizedName `json:"StationName"`
	ArrivalTime   string        `json:"ArrivalTime"`
	DepartureTime string        `json:"DepartureTime"`
}

type dailyTrainInfo struct {
	TrainNo           string        `json:"TrainNo"`
	TrainTypeName     localizedName `json:"TrainTypeName"`
	EndingStationID   string        `json:"EndingStationID"`
	EndingStationName localizedName `json:"EndingStationName"`
}

// RawTrip is one origin-destination record as returned by the schedule
// service. Any field may be missing; Normalize decides what is usable.
type RawTrip struct {
	TrainDate           string         `json:"TrainDate"`
	DailyTrainInfo      dailyTrainInfo `json:"DailyTrainInfo"`
	OriginStopTime      stopTime       `json:"OriginStopTime"`
	DestinationStopTime stopTime       `json:"DestinationStopTime"`
}

var errMalformed = errors.New("malformed trip record")

// Normalize converts a raw record into a ScheduleEntry. Fields the record
// omits fall back to the request where the request is authoritative (travel
// date, station ids). Records without a train number, departure time or
// arrival time are rejected.
func Normalize(raw RawTrip, req Request) (domain.ScheduleEntry, error) {
	trainNo := raw.DailyTrainInfo.TrainNo
	if trainNo == "" {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: missing train number", errMalformed)
	}
	dep, ok := clock(raw.OriginStopTime.DepartureTime)
	if !ok {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: train %s: bad departure time %q", errMalformed, trainNo, raw.OriginStopTime.DepartureTime)
	}
	arr, ok := clock(raw.DestinationStopTime.ArrivalTime)
	if !ok {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: train %s: bad arrival time %q", errMalformed, trainNo, raw.DestinationStopTime.ArrivalTime)
	}

	date := raw.TrainDate
	if domain.ValidateDate(date) != nil {
		date = req.Date
	}

	return domain.ScheduleEntry{
		TripID:               date + "/" + trainNo,
		TrainNumber:          trainNo,
		TrainType:            raw.DailyTrainInfo.TrainTypeName.ZhTw,
		TravelDate:           date,
		OriginStationID:      stationOr(raw.OriginStopTime.StationID, req.Start),
		DestinationStationID: stationOr(raw.DestinationStopTime.StationID, req.End),
		DepartureTime:        dep,
		ArrivalTime:          arr,
		TerminalStationName:  raw.DailyTrainInfo.EndingStationName.ZhTw,
	}, nil
}

// clock accepts HH:MM or HH:MM:SS and returns the HH:MM form.
func clock(s string) (string, bool) {
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	return s, domain.IsClock(s)
}

func stationOr(id string, fallback domain.StationID) domain.StationID {
	if id == "" {
		return fallback
	}
	return domain.StationID(id)
}

package domain

import (
	"fmt"
	"time"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SD"
	FlightStatusArrived   FlightStatus = "AD"
	FlightStatusCanceled  FlightStatus = "CD"
)

var flightStatusLabels = map[FlightStatus]string{
	FlightStatusScheduled: "Scheduled",
	FlightStatusArrived:   "Arrived",
	FlightStatusCanceled:  "Canceled",
}

func (s FlightStatus) Valid() bool {
	_, ok := flightStatusLabels[s]
	return ok
}

func (s FlightStatus) Label() string {
	return flightStatusLabels[s]
}

// Rank is the canonical display order: Scheduled < Arrived < Canceled.
func (s FlightStatus) Rank() int {
	switch s {
	case FlightStatusScheduled:
		return 0
	case FlightStatusArrived:
		return 1
	case FlightStatusCanceled:
		return 2
	}
	return 3
}

func ParseFlightStatus(s string) (FlightStatus, error) {
	st := FlightStatus(s)
	if !st.Valid() {
		return "", &FormatError{Field: "status", Value: s, Reason: fmt.Sprintf("must be one of %q, %q, %q", FlightStatusScheduled, FlightStatusArrived, FlightStatusCanceled)}
	}
	return st, nil
}

type Flight struct {
	ID            int64        `json:"id"`
	FlightNumber  string       `json:"flight_number"`
	RouteID       int64        `json:"route_id"`
	AirplaneID    *int64       `json:"airplane_id"`
	CrewGroupID   *int64       `json:"crew_group_id"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	Status        FlightStatus `json:"status"`

	SourceName      string `json:"source_name,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
}

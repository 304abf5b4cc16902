package domain

import (
	"fmt"
	"time"
)

// FormatError reports a malformed field value (IATA code, flight number,
// enum codes).
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// InvalidRouteError reports a route whose source and destination are the
// same airport.
type InvalidRouteError struct {
	AirportID int64
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("route source and destination are the same airport (id %d)", e.AirportID)
}

// ScheduleError reports a flight whose departure is later than its arrival.
type ScheduleError struct {
	Departure time.Time
	Arrival   time.Time
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("departure %s is later than arrival %s", e.Departure.Format(time.RFC3339), e.Arrival.Format(time.RFC3339))
}

// RangeError reports a numeric field below its minimum.
type RangeError struct {
	Field string
	Min   int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be at least %d, got %d", e.Field, e.Min, e.Value)
}

type NoAirplaneAssignedError struct {
	FlightID int64
}

func (e *NoAirplaneAssignedError) Error() string {
	return fmt.Sprintf("no airplane has been assigned to flight %d yet", e.FlightID)
}

type SeatClassNotConfiguredError struct {
	AirplaneID int64
	SeatClass  SeatClass
}

func (e *SeatClassNotConfiguredError) Error() string {
	return fmt.Sprintf("airplane %d has no seat configuration for class %s", e.AirplaneID, e.SeatClass)
}

type SeatOutOfRangeError struct {
	Seat     int
	Capacity int
}

func (e *SeatOutOfRangeError) Error() string {
	return fmt.Sprintf("seat must be in range [1, %d], got %d", e.Capacity, e.Seat)
}

type RowOutOfRangeError struct {
	Row  int
	Rows int
}

func (e *RowOutOfRangeError) Error() string {
	return fmt.Sprintf("row must be in range [1, %d], got %d", e.Rows, e.Row)
}

// ConstraintViolation is returned by the persistence boundary when a
// database constraint rejects a write. It is a legitimate rejection, never
// retried.
type ConstraintViolation struct {
	Constraint string
	Table      string
	Detail     string
}

func (e *ConstraintViolation) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("constraint %s on %s violated: %s", e.Constraint, e.Table, e.Detail)
	}
	return fmt.Sprintf("constraint %s on %s violated", e.Constraint, e.Table)
}

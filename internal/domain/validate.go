package domain

import (
	"regexp"
	"time"
)

var (
	iataCodeRe     = regexp.MustCompile(`^[A-Z]{3}$`)
	flightNumberRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{1,4}$`)
)

// ValidateIATACode checks that code is exactly three uppercase Latin
// letters.
func ValidateIATACode(code string) error {
	if !iataCodeRe.MatchString(code) {
		return &FormatError{Field: "iata_code", Value: code, Reason: "must be exactly 3 uppercase Latin letters"}
	}
	return nil
}

// ValidateFlightNumber checks that number is two uppercase Latin letters
// followed by one to four digits, e.g. "AB1" or "XY1234".
func ValidateFlightNumber(number string) error {
	if !flightNumberRe.MatchString(number) {
		return &FormatError{Field: "flight_number", Value: number, Reason: "must be 2 uppercase Latin letters followed by 1-4 digits"}
	}
	return nil
}

// ValidateRoute rejects a self-loop. Identity comparison only: two distinct
// airports with identical names are not a conflict. Uniqueness of the
// (source, destination) pair is enforced by the store.
func ValidateRoute(sourceID, destinationID int64) error {
	if sourceID == destinationID {
		return &InvalidRouteError{AirportID: sourceID}
	}
	return nil
}

// ValidateFlightTimes rejects departure later than arrival. Equal times are
// allowed.
func ValidateFlightTimes(departure, arrival time.Time) error {
	if departure.After(arrival) {
		return &ScheduleError{Departure: departure, Arrival: arrival}
	}
	return nil
}

// ValidateTicket checks a ticket's seat placement against the flight's
// airplane and its seat layout. airplane is the one assigned to the target
// flight (nil when none is assigned), configs its seat configurations.
// Checks run in a fixed order and the first failure is returned.
func ValidateTicket(flightID int64, airplane *Airplane, configs []SeatConfiguration, class SeatClass, row, seat int) error {
	if airplane == nil {
		return &NoAirplaneAssignedError{FlightID: flightID}
	}

	var config *SeatConfiguration
	for i := range configs {
		if configs[i].SeatClass == class {
			config = &configs[i]
			break
		}
	}
	if config == nil {
		return &SeatClassNotConfiguredError{AirplaneID: airplane.ID, SeatClass: class}
	}

	capacity := config.Capacity()
	if seat < 1 || seat > capacity {
		return &SeatOutOfRangeError{Seat: seat, Capacity: capacity}
	}
	if row < 1 || row > config.Rows {
		return &RowOutOfRangeError{Row: row, Rows: config.Rows}
	}
	return nil
}

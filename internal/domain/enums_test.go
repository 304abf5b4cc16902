package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatClass(t *testing.T) {
	assert.Equal(t, "Economy Class", SeatClassEconomy.Label())
	assert.Equal(t, "Business Class", SeatClassBusiness.Label())
	assert.Equal(t, "First Class", SeatClassFirst.Label())

	assert.Less(t, SeatClassEconomy.Rank(), SeatClassBusiness.Rank())
	assert.Less(t, SeatClassBusiness.Rank(), SeatClassFirst.Rank())

	class, err := ParseSeatClass("BC")
	require.NoError(t, err)
	assert.Equal(t, SeatClassBusiness, class)

	_, err = ParseSeatClass("Economy")
	require.Error(t, err)
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)

	_, err = ParseSeatClass("")
	assert.Error(t, err)
}

func TestFlightStatus(t *testing.T) {
	assert.Equal(t, "Scheduled", FlightStatusScheduled.Label())
	assert.Equal(t, "Arrived", FlightStatusArrived.Label())
	assert.Equal(t, "Canceled", FlightStatusCanceled.Label())

	assert.Less(t, FlightStatusScheduled.Rank(), FlightStatusArrived.Rank())
	assert.Less(t, FlightStatusArrived.Rank(), FlightStatusCanceled.Rank())

	status, err := ParseFlightStatus("CD")
	require.NoError(t, err)
	assert.Equal(t, FlightStatusCanceled, status)

	_, err = ParseFlightStatus("XX")
	assert.Error(t, err)
}

func TestSeatConfigurationCapacity(t *testing.T) {
	config := SeatConfiguration{Rows: 10, SeatsInRow: 6}
	assert.Equal(t, 60, config.Capacity())
}

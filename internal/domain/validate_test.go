package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIATACode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"JFK", false},
		{"LAX", false},
		{"jfk", true},
		{"JF", true},
		{"JFKX", true},
		{"JF1", true},
		{"", true},
		{" JFK", true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := ValidateIATACode(tt.code)
			if tt.wantErr {
				var fe *FormatError
				require.Error(t, err)
				assert.True(t, errors.As(err, &fe))
				assert.Equal(t, "iata_code", fe.Field)
				assert.Equal(t, tt.code, fe.Value)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFlightNumber(t *testing.T) {
	tests := []struct {
		number  string
		wantErr bool
	}{
		{"AB1", false},
		{"XY1234", false},
		{"QF7", false},
		{"AB", true},
		{"AB12345", true},
		{"A1234", true},
		{"ab123", true},
		{"AB12X", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			err := ValidateFlightNumber(tt.number)
			if tt.wantErr {
				var fe *FormatError
				require.Error(t, err)
				assert.True(t, errors.As(err, &fe))
				assert.Equal(t, "flight_number", fe.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRoute(t *testing.T) {
	assert.NoError(t, ValidateRoute(1, 2))

	err := ValidateRoute(7, 7)
	var ir *InvalidRouteError
	require.Error(t, err)
	assert.True(t, errors.As(err, &ir))
	assert.Equal(t, int64(7), ir.AirportID)
}

func TestValidateFlightTimes(t *testing.T) {
	departure := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateFlightTimes(departure, departure.Add(2*time.Hour)))
	// Equal times pass; only a departure later than arrival is rejected.
	assert.NoError(t, ValidateFlightTimes(departure, departure))

	err := ValidateFlightTimes(departure, departure.Add(-time.Minute))
	var se *ScheduleError
	require.Error(t, err)
	assert.True(t, errors.As(err, &se))
}

func TestValidateTicket(t *testing.T) {
	airplane := &Airplane{ID: 3, ModelName: "A320"}
	// 10 rows of 6: seats 1..60 in economy.
	configs := []SeatConfiguration{
		{ID: 1, SeatClass: SeatClassEconomy, Rows: 10, SeatsInRow: 6, AirplaneID: 3},
	}

	tests := []struct {
		name     string
		airplane *Airplane
		configs  []SeatConfiguration
		class    SeatClass
		row      int
		seat     int
		wantErr  interface{}
	}{
		{"first seat", airplane, configs, SeatClassEconomy, 1, 1, nil},
		{"last seat", airplane, configs, SeatClassEconomy, 10, 60, nil},
		{"no airplane", nil, nil, SeatClassEconomy, 1, 1, &NoAirplaneAssignedError{}},
		{"class not configured", airplane, configs, SeatClassBusiness, 1, 1, &SeatClassNotConfiguredError{}},
		{"seat zero", airplane, configs, SeatClassEconomy, 1, 0, &SeatOutOfRangeError{}},
		{"seat past capacity", airplane, configs, SeatClassEconomy, 1, 61, &SeatOutOfRangeError{}},
		{"row zero", airplane, configs, SeatClassEconomy, 0, 1, &RowOutOfRangeError{}},
		{"row past layout", airplane, configs, SeatClassEconomy, 11, 1, &RowOutOfRangeError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTicket(42, tt.airplane, tt.configs, tt.class, tt.row, tt.seat)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			switch want := tt.wantErr.(type) {
			case *NoAirplaneAssignedError:
				assert.True(t, errors.As(err, &want))
				assert.Equal(t, int64(42), want.FlightID)
			case *SeatClassNotConfiguredError:
				assert.True(t, errors.As(err, &want))
				assert.Equal(t, int64(3), want.AirplaneID)
			case *SeatOutOfRangeError:
				assert.True(t, errors.As(err, &want))
				assert.Equal(t, 60, want.Capacity)
			case *RowOutOfRangeError:
				assert.True(t, errors.As(err, &want))
				assert.Equal(t, 10, want.Rows)
			}
		})
	}
}

// A malformed seat within a misconfigured class reports the class first.
func TestValidateTicket_CheckOrder(t *testing.T) {
	airplane := &Airplane{ID: 5}
	configs := []SeatConfiguration{
		{SeatClass: SeatClassEconomy, Rows: 10, SeatsInRow: 6, AirplaneID: 5},
	}

	err := ValidateTicket(1, airplane, configs, SeatClassFirst, 99, 999)
	var nc *SeatClassNotConfiguredError
	require.Error(t, err)
	assert.True(t, errors.As(err, &nc))

	err = ValidateTicket(1, nil, configs, SeatClassFirst, 99, 999)
	var na *NoAirplaneAssignedError
	require.Error(t, err)
	assert.True(t, errors.As(err, &na))
}

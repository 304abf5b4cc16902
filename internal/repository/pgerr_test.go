package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pvoloshyn/airdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWrapPgError_UniqueViolation(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "ticket_flight_id_seat_class_seat_key",
		TableName:      "ticket",
		Detail:         "Key (flight_id, seat_class, seat)=(1, EC, 5) already exists.",
	}

	err := wrapPgError(fmt.Errorf("insert ticket: %w", src))

	var cv *domain.ConstraintViolation
	assert.True(t, errors.As(err, &cv))
	assert.Equal(t, "ticket_flight_id_seat_class_seat_key", cv.Constraint)
	assert.Equal(t, "ticket", cv.Table)
}

func TestWrapPgError_ForeignKeyViolation(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "airport_city_id_fkey",
		TableName:      "airport",
	}

	err := wrapPgError(src)

	var cv *domain.ConstraintViolation
	assert.True(t, errors.As(err, &cv))
	assert.Equal(t, "airport_city_id_fkey", cv.Constraint)
}

func TestWrapPgError_PassThrough(t *testing.T) {
	src := errors.New("connection refused")
	assert.Equal(t, src, wrapPgError(src))
	assert.NoError(t, wrapPgError(nil))
}

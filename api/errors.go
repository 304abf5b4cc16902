package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/pvoloshyn/airdesk/internal/domain"
)

// respondError maps domain errors onto HTTP statuses: validation failures
// are 400, store constraint conflicts 409, missing records 404.
func respondError(c *gin.Context, err error) {
	var constraint *domain.ConstraintViolation

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &constraint):
		c.JSON(http.StatusConflict, gin.H{"error": constraint.Error()})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isValidationError(err error) bool {
	var (
		format     *domain.FormatError
		route      *domain.InvalidRouteError
		schedule   *domain.ScheduleError
		rng        *domain.RangeError
		noAirplane *domain.NoAirplaneAssignedError
		seatClass  *domain.SeatClassNotConfiguredError
		seat       *domain.SeatOutOfRangeError
		row        *domain.RowOutOfRangeError
	)
	return errors.As(err, &format) ||
		errors.As(err, &route) ||
		errors.As(err, &schedule) ||
		errors.As(err, &rng) ||
		errors.As(err, &noAirplane) ||
		errors.As(err, &seatClass) ||
		errors.As(err, &seat) ||
		errors.As(err, &row)
}

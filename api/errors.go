package api

import (
	"errors"
	"net/http"

	"flightdesk/internal/repository"
	"flightdesk/internal/service/auth"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrPassengerNotFound),
		errors.Is(err, booking.ErrFlightNotFound),
		errors.Is(err, booking.ErrClassNotFound),
		errors.Is(err, flights.ErrFlightNotFound),
		errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidSeat),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidTransition):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, auth.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUserInactive):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

package booking

import "errors"

var (
	ErrPassengerNotFound  = errors.New("passenger not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrClassNotFound      = errors.New("travel class not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidSeat        = errors.New("invalid seat number")
	ErrInvalidStatus      = errors.New("unknown booking status")
	ErrInvalidTransition  = errors.New("illegal booking status transition")
	ErrReferenceExhausted = errors.New("could not generate a unique reference")
)

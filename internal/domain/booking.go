package domain

import "time"

type BookingStatus string

const (
	BookingStatusReserved  BookingStatus = "Reserved"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCheckedIn BookingStatus = "Checked-in"
)

// bookingTransitions lists the legal next statuses per current status.
// Cancelled is terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusReserved:  {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn: {BookingStatusCancelled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusReserved, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCheckedIn:
		return true
	}
	return false
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference"`
	PassengerID int64         `json:"passenger_id"`
	FlightID    int64         `json:"flight_id"`
	ClassID     int64         `json:"class_id"`
	SeatNumber  *string       `json:"seat_number,omitempty"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	TotalCents  int64         `json:"total_cents"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Display-only fields filled from joins, never written back.
	PassengerName string `json:"passenger_name,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
}

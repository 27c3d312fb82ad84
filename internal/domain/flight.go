package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusDeparted  FlightStatus = "Departed"
	FlightStatusArrived   FlightStatus = "Arrived"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

type Flight struct {
	ID                 int64        `json:"id"`
	FlightNumber       string       `json:"flight_number"`
	AirlineID          int64        `json:"airline_id"`
	AircraftID         int64        `json:"aircraft_id"`
	DepartureAirportID int64        `json:"departure_airport_id"`
	ArrivalAirportID   int64        `json:"arrival_airport_id"`
	DepartureTime      time.Time    `json:"departure_time"`
	ArrivalTime        time.Time    `json:"arrival_time"`
	BasePriceCents     int64        `json:"base_price_cents"`
	Status             FlightStatus `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	// Display-only fields filled from joins.
	AirlineName          string `json:"airline_name,omitempty"`
	DepartureAirportCode string `json:"departure_airport_code,omitempty"`
	ArrivalAirportCode   string `json:"arrival_airport_code,omitempty"`
}

package domain

import "time"

type Passenger struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	PassportNumber string    `json:"passport_number"`
	Nationality    string    `json:"nationality"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

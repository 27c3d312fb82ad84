package domain

type Aircraft struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	Model      string `json:"model"`
	TotalSeats int    `json:"total_seats"`
	AirlineID  int64  `json:"airline_id"`
}

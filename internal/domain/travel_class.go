package domain

// TravelClass prices a cabin relative to the flight's base fare.
// MultiplierBP is in basis points: 10000 means 1.0x, 15000 means 1.5x.
type TravelClass struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MultiplierBP int64  `json:"multiplier_bp"`
}

// TicketPriceCents applies the class multiplier to a base fare with
// half-up rounding to a whole cent.
func TicketPriceCents(basePriceCents, multiplierBP int64) int64 {
	return (basePriceCents*multiplierBP + 5000) / 10000
}

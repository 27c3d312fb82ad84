package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketPriceCents(t *testing.T) {
	// 500.00 at 1.5x is exactly 750.00.
	assert.Equal(t, int64(75000), TicketPriceCents(50000, 15000))

	// 1.0x leaves the base price untouched.
	assert.Equal(t, int64(50000), TicketPriceCents(50000, 10000))

	assert.Equal(t, int64(0), TicketPriceCents(0, 15000))
	assert.Equal(t, int64(0), TicketPriceCents(50000, 0))

	// 0.01 at 2.5x rounds half up to 0.03.
	assert.Equal(t, int64(3), TicketPriceCents(1, 25000))

	// 199.99 at 1.75x: 34998.25 rounds to 34998.
	assert.Equal(t, int64(34998), TicketPriceCents(19999, 17500))
}

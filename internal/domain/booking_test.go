package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusReserved.Valid())
	assert.True(t, BookingStatusConfirmed.Valid())
	assert.True(t, BookingStatusCancelled.Valid())
	assert.True(t, BookingStatusCheckedIn.Valid())
	assert.False(t, BookingStatus("").Valid())
	assert.False(t, BookingStatus("Pending").Valid())
	assert.False(t, BookingStatus("reserved").Valid())
}

func TestBookingStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusReserved, BookingStatusConfirmed, true},
		{BookingStatusReserved, BookingStatusCancelled, true},
		{BookingStatusReserved, BookingStatusCheckedIn, false},
		{BookingStatusReserved, BookingStatusReserved, false},
		{BookingStatusConfirmed, BookingStatusCheckedIn, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusReserved, false},
		{BookingStatusCheckedIn, BookingStatusCancelled, true},
		{BookingStatusCheckedIn, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusReserved, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusCheckedIn, false},
		{BookingStatusCancelled, BookingStatusCancelled, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

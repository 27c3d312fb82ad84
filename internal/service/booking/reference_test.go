package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingReference_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := newBookingReference()
		assert.Regexp(t, `^[A-Z0-9]{6}$`, ref)
	}
}

func TestNewTransactionReference_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := newTransactionReference()
		assert.Regexp(t, `^TX[A-Z0-9]{10}$`, ref)
	}
}

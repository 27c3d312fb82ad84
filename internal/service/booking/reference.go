package booking

import "math/rand"

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// References are short human-facing codes, not primary keys. Collisions
// are handled by the unique constraint plus insert retry, so plain
// math/rand is enough here.
func randomReference(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = referenceCharset[rand.Intn(len(referenceCharset))]
	}
	return string(buf)
}

func newBookingReference() string {
	return randomReference(6)
}

func newTransactionReference() string {
	return "TX" + randomReference(10)
}

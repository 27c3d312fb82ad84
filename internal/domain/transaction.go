package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusCompleted TransactionStatus = "Completed"
)

type Transaction struct {
	ID              int64             `json:"id"`
	BookingID       int64             `json:"booking_id"`
	AmountCents     int64             `json:"amount_cents"`
	PaymentMethod   string            `json:"payment_method"`
	Status          TransactionStatus `json:"status"`
	TransactionDate time.Time         `json:"transaction_date"`
	ReferenceNumber string            `json:"reference_number"`
}

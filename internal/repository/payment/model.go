package payment

import "time"

type PaymentDB struct {
	ID              int64
	ShipmentID      int64
	UserID          int64
	TrackingNumber  string
	Method          string
	Status          string
	Amount          float64
	StripePaymentID string
	ProofURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package entities

import "time"

type Payment struct {
	ID             int64
	ShipmentID     int64
	UserID         int64
	TrackingNumber string

	Method PaymentMethodType
	Status PaymentStatusType
	Amount float64

	StripePaymentID string
	ProofURL        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentMethodType string

const (
	PaymentCard         PaymentMethodType = "stripe"
	PaymentCrypto       PaymentMethodType = "cryptocurrency"
	PaymentBankTransfer PaymentMethodType = "bank_transfer"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentFailed   PaymentStatusType = "failed"
	PaymentRejected PaymentStatusType = "rejected"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// PaymentModify - частичное обновление при ручном подтверждении админом.
type PaymentModify struct {
	ID     *int64
	Status *PaymentStatusType
}

// PaymentIntent - платёжное намерение внешнего процессинга.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Status       string
}

type PaymentListFilter struct {
	Status *PaymentStatusType
	Method *PaymentMethodType
	UserID *int64

	Search  string
	Page    int
	PerPage int
}

package shipment

import "time"

type ShipmentDB struct {
	ID             int64
	UserID         int64
	TrackingNumber string

	SenderName     string
	SenderEmail    string
	SenderPhone    string
	SenderAddress  string
	SenderAptSuite string
	SenderCity     string
	SenderState    string
	SenderZip      string
	SenderCountry  string

	RecipientName     string
	RecipientEmail    string
	RecipientPhone    string
	RecipientAddress  string
	RecipientAptSuite string
	RecipientCity     string
	RecipientState    string
	RecipientZip      string
	RecipientCountry  string

	PickupInstructions   string
	DeliveryInstructions string

	PackageType   string
	Length        float64
	Width         float64
	Height        float64
	Weight        float64
	Quantity      int64
	Description   string
	DeclaredValue float64

	ServiceType       string
	PickupDate        time.Time
	PickupTime        string
	EstimatedDelivery time.Time

	PaymentMethod   string
	PaymentStatus   string
	StripePaymentID string
	PaymentProofURL string

	BasePrice        float64
	InsuranceAmount  float64
	InternationalFee float64
	Subtotal         float64
	DiscountAmount   float64
	TaxAmount        float64
	TotalCost        float64

	Status          string
	AdminApproved   bool
	IsInternational bool

	Origin          string
	Destination     string
	CurrentLocation string

	VideoProofURL string
	VideoNotes    string

	TaxID       string
	HSCode      string
	ContentType string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TrackingUpdateDB struct {
	ID         int64
	ShipmentID int64
	Status     string
	Location   string
	Message    string
	CreatedAt  time.Time
}

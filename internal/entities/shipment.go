package entities

import "time"

type Shipment struct {
	ID             int64
	UserID         int64
	TrackingNumber string

	Sender    Party
	Recipient Party

	PickupInstructions   string
	DeliveryInstructions string

	Package Package

	ServiceType       ServiceLevelType
	PickupDate        time.Time
	PickupTime        string
	EstimatedDelivery time.Time

	PaymentMethod   PaymentMethodType
	PaymentStatus   PaymentStatusType
	StripePaymentID string
	PaymentProofURL string

	Cost CostBreakdown

	Status          ShipmentStatusType
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

type Party struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	AptSuite string
	City     string
	State    string
	Zip      string
	Country  string
}

type Package struct {
	Type          PackageTypeType
	Length        float64
	Width         float64
	Height        float64
	Weight        float64
	Quantity      int64
	Description   string
	DeclaredValue float64
}

type PackageTypeType string

const (
	PackageEnvelope PackageTypeType = "envelope"
	PackageSmallBox PackageTypeType = "small_box"
	PackageLargeBox PackageTypeType = "large_box"
	PackagePallet   PackageTypeType = "pallet"
)

// Конверт всегда имеет фиксированные габариты, поля размеров не редактируются.
const (
	EnvelopeLength = 30.0
	EnvelopeWidth  = 22.0
	EnvelopeHeight = 1.0
)

func (t PackageTypeType) String() string {
	return string(t)
}

type ShipmentStatusType string

const (
	ShipmentPending        ShipmentStatusType = "pending"
	ShipmentPickedUp       ShipmentStatusType = "picked_up"
	ShipmentInTransit      ShipmentStatusType = "in_transit"
	ShipmentOutForDelivery ShipmentStatusType = "out_for_delivery"
	ShipmentDelivered      ShipmentStatusType = "delivered"
	ShipmentOnHold         ShipmentStatusType = "on_hold"
	ShipmentCancelled      ShipmentStatusType = "cancelled"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// ShipmentModify - частичное обновление из админки.
type ShipmentModify struct {
	ID                *int64
	Status            *ShipmentStatusType
	AdminApproved     *bool
	PaymentStatus     *PaymentStatusType
	CurrentLocation   *string
	EstimatedDelivery *time.Time
	TotalCost         *float64
}

type TrackingUpdate struct {
	ID         int64
	ShipmentID int64
	Status     ShipmentStatusType
	Location   string
	Message    string
	CreatedAt  time.Time
}

// ShipmentListFilter - только eq/range фильтры уходят в SQL,
// поиск и пагинация применяются поверх выборки в памяти.
type ShipmentListFilter struct {
	Status   *ShipmentStatusType
	Approved *bool
	DateFrom *time.Time
	DateTo   *time.Time
	UserID   *int64

	Search  string
	Page    int
	PerPage int
}

package entities

import "time"

// Quote - заявка на расчёт стоимости с публичного сайта.
type Quote struct {
	ID      int64
	QuoteID string

	Name    string
	Email   string
	Phone   string
	Company string

	Origin      string
	Destination string

	Tier          QuoteTierType
	Weight        float64
	DeclaredValue float64

	Options QuoteOptions

	Breakdown QuoteBreakdown

	Status QuoteStatusType

	CreatedAt time.Time
}

type QuoteTierType string

const (
	TierExpress       QuoteTierType = "express"
	TierStandard      QuoteTierType = "standard"
	TierFreight       QuoteTierType = "freight"
	TierInternational QuoteTierType = "international"
)

func (t QuoteTierType) String() string {
	return string(t)
}

type QuoteOptions struct {
	Signature bool
	Insurance bool
	Saturday  bool
	Packaging bool
}

type QuoteBreakdown struct {
	BaseShipping  float64
	SignatureCost float64
	InsuranceCost float64
	SaturdayCost  float64
	PackagingCost float64
	Total         float64
}

type QuoteStatusType string

const (
	QuotePending   QuoteStatusType = "pending"
	QuoteProcessed QuoteStatusType = "processed"
)

func (s QuoteStatusType) String() string {
	return string(s)
}

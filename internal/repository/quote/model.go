package quote

import "time"

type QuoteDB struct {
	ID      int64
	QuoteID string

	Name    string
	Email   string
	Phone   string
	Company string

	Origin      string
	Destination string

	Tier          string
	Weight        float64
	DeclaredValue float64

	Signature bool
	Insurance bool
	Saturday  bool
	Packaging bool

	BaseShipping  float64
	SignatureCost float64
	InsuranceCost float64
	SaturdayCost  float64
	PackagingCost float64
	Total         float64

	Status string

	CreatedAt time.Time
}

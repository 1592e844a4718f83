package quote

import (
	"amerex/internal/entities"
)

func ToDomain(q *QuoteDB) *entities.Quote {
	if q == nil {
		return nil
	}

	return &entities.Quote{
		ID:            q.ID,
		QuoteID:       q.QuoteID,
		Name:          q.Name,
		Email:         q.Email,
		Phone:         q.Phone,
		Company:       q.Company,
		Origin:        q.Origin,
		Destination:   q.Destination,
		Tier:          entities.QuoteTierType(q.Tier),
		Weight:        q.Weight,
		DeclaredValue: q.DeclaredValue,
		Options: entities.QuoteOptions{
			Signature: q.Signature,
			Insurance: q.Insurance,
			Saturday:  q.Saturday,
			Packaging: q.Packaging,
		},
		Breakdown: entities.QuoteBreakdown{
			BaseShipping:  q.BaseShipping,
			SignatureCost: q.SignatureCost,
			InsuranceCost: q.InsuranceCost,
			SaturdayCost:  q.SaturdayCost,
			PackagingCost: q.PackagingCost,
			Total:         q.Total,
		},
		Status:    entities.QuoteStatusType(q.Status),
		CreatedAt: q.CreatedAt,
	}
}

func ToDomainList(quotesDB []QuoteDB) []entities.Quote {
	if len(quotesDB) == 0 {
		return []entities.Quote{}
	}

	result := make([]entities.Quote, len(quotesDB))
	for i, quoteDB := range quotesDB {
		result[i] = *ToDomain(&quoteDB)
	}
	return result
}

package payment

import (
	"amerex/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:              p.ID,
		ShipmentID:      p.ShipmentID,
		UserID:          p.UserID,
		TrackingNumber:  p.TrackingNumber,
		Method:          entities.PaymentMethodType(p.Method),
		Status:          entities.PaymentStatusType(p.Status),
		Amount:          p.Amount,
		StripePaymentID: p.StripePaymentID,
		ProofURL:        p.ProofURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}

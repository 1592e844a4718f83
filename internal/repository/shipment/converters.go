package shipment

import (
	"amerex/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:             s.ID,
		UserID:         s.UserID,
		TrackingNumber: s.TrackingNumber,
		Sender: entities.Party{
			Name:     s.SenderName,
			Email:    s.SenderEmail,
			Phone:    s.SenderPhone,
			Address:  s.SenderAddress,
			AptSuite: s.SenderAptSuite,
			City:     s.SenderCity,
			State:    s.SenderState,
			Zip:      s.SenderZip,
			Country:  s.SenderCountry,
		},
		Recipient: entities.Party{
			Name:     s.RecipientName,
			Email:    s.RecipientEmail,
			Phone:    s.RecipientPhone,
			Address:  s.RecipientAddress,
			AptSuite: s.RecipientAptSuite,
			City:     s.RecipientCity,
			State:    s.RecipientState,
			Zip:      s.RecipientZip,
			Country:  s.RecipientCountry,
		},
		PickupInstructions:   s.PickupInstructions,
		DeliveryInstructions: s.DeliveryInstructions,
		Package: entities.Package{
			Type:          entities.PackageTypeType(s.PackageType),
			Length:        s.Length,
			Width:         s.Width,
			Height:        s.Height,
			Weight:        s.Weight,
			Quantity:      s.Quantity,
			Description:   s.Description,
			DeclaredValue: s.DeclaredValue,
		},
		ServiceType:       entities.ServiceLevelType(s.ServiceType),
		PickupDate:        s.PickupDate,
		PickupTime:        s.PickupTime,
		EstimatedDelivery: s.EstimatedDelivery,
		PaymentMethod:     entities.PaymentMethodType(s.PaymentMethod),
		PaymentStatus:     entities.PaymentStatusType(s.PaymentStatus),
		StripePaymentID:   s.StripePaymentID,
		PaymentProofURL:   s.PaymentProofURL,
		Cost: entities.CostBreakdown{
			BasePrice:        s.BasePrice,
			InsuranceAmount:  s.InsuranceAmount,
			InternationalFee: s.InternationalFee,
			Subtotal:         s.Subtotal,
			DiscountAmount:   s.DiscountAmount,
			TaxAmount:        s.TaxAmount,
			TotalCost:        s.TotalCost,
		},
		Status:          entities.ShipmentStatusType(s.Status),
		AdminApproved:   s.AdminApproved,
		IsInternational: s.IsInternational,
		Origin:          s.Origin,
		Destination:     s.Destination,
		CurrentLocation: s.CurrentLocation,
		VideoProofURL:   s.VideoProofURL,
		VideoNotes:      s.VideoNotes,
		TaxID:           s.TaxID,
		HSCode:          s.HSCode,
		ContentType:     s.ContentType,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}

func ToTrackingDomain(u *TrackingUpdateDB) *entities.TrackingUpdate {
	if u == nil {
		return nil
	}

	return &entities.TrackingUpdate{
		ID:         u.ID,
		ShipmentID: u.ShipmentID,
		Status:     entities.ShipmentStatusType(u.Status),
		Location:   u.Location,
		Message:    u.Message,
		CreatedAt:  u.CreatedAt,
	}
}

func ToTrackingDomainList(updatesDB []TrackingUpdateDB) []entities.TrackingUpdate {
	if len(updatesDB) == 0 {
		return []entities.TrackingUpdate{}
	}

	result := make([]entities.TrackingUpdate, len(updatesDB))
	for i, updateDB := range updatesDB {
		result[i] = *ToTrackingDomain(&updateDB)
	}
	return result
}

// Package convert мапит доменные сущности в DTO ответов.
// Общие маппинги вынесены сюда, чтобы хендлеры не дублировали их.
package convert

import (
	"amerex/internal/entities"
	"amerex/internal/generated/dto"
)

func Party(p entities.Party) dto.Party {
	return dto.Party{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
		AptSuite: p.AptSuite,
		City:     p.City,
		State:    p.State,
		Zip:      p.Zip,
		Country:  p.Country,
	}
}

func PartyEntity(p dto.Party) entities.Party {
	return entities.Party{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
		AptSuite: p.AptSuite,
		City:     p.City,
		State:    p.State,
		Zip:      p.Zip,
		Country:  p.Country,
	}
}

func Package(p entities.Package) dto.PackageInfo {
	return dto.PackageInfo{
		Type:          p.Type.String(),
		Length:        p.Length,
		Width:         p.Width,
		Height:        p.Height,
		Weight:        p.Weight,
		Quantity:      p.Quantity,
		Description:   p.Description,
		DeclaredValue: p.DeclaredValue,
	}
}

func PackageEntity(p dto.PackageInfo) entities.Package {
	return entities.Package{
		Type:          entities.PackageTypeType(p.Type),
		Length:        p.Length,
		Width:         p.Width,
		Height:        p.Height,
		Weight:        p.Weight,
		Quantity:      p.Quantity,
		Description:   p.Description,
		DeclaredValue: p.DeclaredValue,
	}
}

func Cost(c entities.CostBreakdown) dto.CostBreakdown {
	return dto.CostBreakdown{
		BasePrice:        c.BasePrice,
		InsuranceAmount:  c.InsuranceAmount,
		InternationalFee: c.InternationalFee,
		Subtotal:         c.Subtotal,
		DiscountAmount:   c.DiscountAmount,
		TaxAmount:        c.TaxAmount,
		TotalCost:        c.TotalCost,
	}
}

func Shipment(s *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:                s.ID,
		TrackingNumber:    s.TrackingNumber,
		Sender:            Party(s.Sender),
		Recipient:         Party(s.Recipient),
		Package:           Package(s.Package),
		ServiceType:       s.ServiceType.String(),
		PickupDate:        s.PickupDate,
		PickupTime:        s.PickupTime,
		EstimatedDelivery: s.EstimatedDelivery,
		PaymentMethod:     s.PaymentMethod.String(),
		PaymentStatus:     s.PaymentStatus.String(),
		Cost:              Cost(s.Cost),
		Status:            s.Status.String(),
		AdminApproved:     s.AdminApproved,
		IsInternational:   s.IsInternational,
		Origin:            s.Origin,
		Destination:       s.Destination,
		CurrentLocation:   s.CurrentLocation,
		CreatedAt:         s.CreatedAt,
	}
}

func Shipments(shipments []entities.Shipment) []dto.Shipment {
	result := make([]dto.Shipment, len(shipments))
	for i := range shipments {
		result[i] = Shipment(&shipments[i])
	}
	return result
}

func TrackingUpdates(updates []entities.TrackingUpdate) []dto.TrackingUpdate {
	result := make([]dto.TrackingUpdate, len(updates))
	for i, u := range updates {
		result[i] = dto.TrackingUpdate{
			ID:        u.ID,
			Status:    u.Status.String(),
			Location:  u.Location,
			Message:   u.Message,
			CreatedAt: u.CreatedAt,
		}
	}
	return result
}

func Draft(d *entities.Draft) dto.Draft {
	draft := dto.Draft{
		ID:                d.ID,
		Step:              d.Step.String(),
		Sender:            Party(d.Sender),
		Recipient:         Party(d.Recipient),
		Package:           Package(d.Package),
		ServiceType:       d.ServiceType.String(),
		PickupDate:        d.PickupDate,
		PickupTime:        d.PickupTime,
		EstimatedDelivery: d.EstimatedDelivery,
		HasInsurance:      d.HasInsurance,
		IsInternational:   d.IsInternational,
		Cost:              Cost(d.Cost),
	}
	if d.Coupon != nil {
		draft.CouponCode = d.Coupon.Code
	}
	return draft
}

func Payment(p *entities.Payment) dto.Payment {
	return dto.Payment{
		ID:              p.ID,
		ShipmentID:      p.ShipmentID,
		TrackingNumber:  p.TrackingNumber,
		Method:          p.Method.String(),
		Status:          p.Status.String(),
		Amount:          p.Amount,
		StripePaymentID: p.StripePaymentID,
		CreatedAt:       p.CreatedAt,
	}
}

func Payments(payments []entities.Payment) []dto.Payment {
	result := make([]dto.Payment, len(payments))
	for i := range payments {
		result[i] = Payment(&payments[i])
	}
	return result
}

func User(u *entities.User) dto.User {
	return dto.User{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Company:     u.Company,
		Role:        u.Role.String(),
		AccountType: u.AccountType.String(),
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

func Users(users []entities.User) []dto.User {
	result := make([]dto.User, len(users))
	for i := range users {
		result[i] = User(&users[i])
	}
	return result
}

func Ticket(t *entities.Ticket) dto.Ticket {
	replies := make([]dto.TicketReply, len(t.Replies))
	for i, r := range t.Replies {
		replies[i] = dto.TicketReply{
			ID:        r.ID,
			AuthorID:  r.AuthorID,
			IsAdmin:   r.IsAdmin,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}
	}

	return dto.Ticket{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Message:   t.Message,
		Priority:  t.Priority.String(),
		Status:    t.Status.String(),
		Replies:   replies,
		CreatedAt: t.CreatedAt,
	}
}

func Tickets(tickets []entities.Ticket) []dto.Ticket {
	result := make([]dto.Ticket, len(tickets))
	for i := range tickets {
		result[i] = Ticket(&tickets[i])
	}
	return result
}

func Address(a *entities.Address) dto.Address {
	return dto.Address{
		ID:        a.ID,
		Label:     a.Label,
		Name:      a.Name,
		Phone:     a.Phone,
		Address:   a.Address,
		AptSuite:  a.AptSuite,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		IsDefault: a.IsDefault,
	}
}

func Addresses(addresses []entities.Address) []dto.Address {
	result := make([]dto.Address, len(addresses))
	for i := range addresses {
		result[i] = Address(&addresses[i])
	}
	return result
}

func QuoteBreakdown(b entities.QuoteBreakdown) dto.QuoteBreakdown {
	return dto.QuoteBreakdown{
		BaseShipping:  b.BaseShipping,
		SignatureCost: b.SignatureCost,
		InsuranceCost: b.InsuranceCost,
		SaturdayCost:  b.SaturdayCost,
		PackagingCost: b.PackagingCost,
		Total:         b.Total,
	}
}

func Notifications(notifications []entities.Notification) []dto.Notification {
	result := make([]dto.Notification, len(notifications))
	for i, n := range notifications {
		result[i] = dto.Notification{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Kind:      n.Kind.String(),
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return result
}

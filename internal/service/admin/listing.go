package admin

import (
	"strings"

	"amerex/internal/entities"
)

func searchShipments(shipments []entities.Shipment, search string) []entities.Shipment {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return shipments
	}

	var out []entities.Shipment
	for _, sh := range shipments {
		if strings.Contains(strings.ToLower(sh.TrackingNumber), needle) ||
			strings.Contains(strings.ToLower(sh.Sender.Name), needle) ||
			strings.Contains(strings.ToLower(sh.Recipient.Name), needle) {
			out = append(out, sh)
		}
	}
	return out
}

func searchPayments(payments []entities.Payment, search string) []entities.Payment {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return payments
	}

	var out []entities.Payment
	for _, p := range payments {
		if strings.Contains(strings.ToLower(p.TrackingNumber), needle) ||
			strings.Contains(strings.ToLower(p.StripePaymentID), needle) {
			out = append(out, p)
		}
	}
	return out
}

func searchUsers(users []entities.User, search string) []entities.User {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return users
	}

	var out []entities.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), needle) ||
			strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) {
			out = append(out, u)
		}
	}
	return out
}

func searchTickets(tickets []entities.Ticket, search string) []entities.Ticket {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return tickets
	}

	var out []entities.Ticket
	for _, t := range tickets {
		if strings.Contains(strings.ToLower(t.Subject), needle) ||
			strings.Contains(strings.ToLower(t.Message), needle) {
			out = append(out, t)
		}
	}
	return out
}

func pageOf[T any](items []T, page, perPage int) []T {
	if perPage <= 0 {
		return items
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

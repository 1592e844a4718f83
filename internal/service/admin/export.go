package admin

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"amerex/internal/entities"
)

const (
	ExportShipments = "shipments"
	ExportPayments  = "payments"
	ExportUsers     = "users"
	ExportTickets   = "tickets"

	exportTimeLayout = "2006-01-02 15:04:05"
)

// ExportCSV выгружает весь отфильтрованный набор без пагинации.
// Пустая выборка - ошибка, видимая пользователю.
func (s *Admin) ExportCSV(ctx context.Context, entity string, shipmentFilter entities.ShipmentListFilter, paymentFilter entities.PaymentListFilter) ([]byte, string, error) {
	var (
		rows [][]string
		err  error
	)

	switch entity {
	case ExportShipments:
		rows, err = s.shipmentRows(ctx, shipmentFilter)
	case ExportPayments:
		rows, err = s.paymentRows(ctx, paymentFilter)
	case ExportUsers:
		rows, err = s.userRows(ctx)
	case ExportTickets:
		rows, err = s.ticketRows(ctx)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownExportEntity, entity)
	}
	if err != nil {
		return nil, "", err
	}

	// одна строка - это только заголовок
	if len(rows) <= 1 {
		return nil, "", ErrNothingToExport
	}

	filename := fmt.Sprintf("%s-%s.csv", entity, time.Now().Format("2006-01-02"))
	return renderCSV(rows), filename, nil
}

func (s *Admin) shipmentRows(ctx context.Context, filter entities.ShipmentListFilter) ([][]string, error) {
	filter.Page = 0
	filter.PerPage = 0

	shipments, err := s.shipments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments for export: %w", err)
	}
	if filter.Search != "" {
		shipments = searchShipments(shipments, filter.Search)
	}

	rows := [][]string{{
		"id", "tracking_number", "sender", "recipient", "origin", "destination",
		"service_type", "status", "payment_status", "admin_approved", "total_cost", "created_at",
	}}
	for _, sh := range shipments {
		rows = append(rows, []string{
			strconv.FormatInt(sh.ID, 10),
			sh.TrackingNumber,
			sh.Sender.Name,
			sh.Recipient.Name,
			sh.Origin,
			sh.Destination,
			sh.ServiceType.String(),
			sh.Status.String(),
			sh.PaymentStatus.String(),
			strconv.FormatBool(sh.AdminApproved),
			formatMoney(sh.Cost.TotalCost),
			sh.CreatedAt.Format(exportTimeLayout),
		})
	}
	return rows, nil
}

func (s *Admin) paymentRows(ctx context.Context, filter entities.PaymentListFilter) ([][]string, error) {
	filter.Page = 0
	filter.PerPage = 0

	payments, err := s.payments.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payments for export: %w", err)
	}
	if filter.Search != "" {
		payments = searchPayments(payments, filter.Search)
	}

	rows := [][]string{{
		"id", "shipment_id", "tracking_number", "method", "status", "amount", "stripe_payment_id", "created_at",
	}}
	for _, p := range payments {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.ShipmentID, 10),
			p.TrackingNumber,
			p.Method.String(),
			p.Status.String(),
			formatMoney(p.Amount),
			p.StripePaymentID,
			p.CreatedAt.Format(exportTimeLayout),
		})
	}
	return rows, nil
}

func (s *Admin) userRows(ctx context.Context) ([][]string, error) {
	users, err := s.users.List(ctx, entities.UserListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list users for export: %w", err)
	}

	rows := [][]string{{
		"id", "email", "first_name", "last_name", "role", "account_type", "created_at",
	}}
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Email,
			u.FirstName,
			u.LastName,
			u.Role.String(),
			u.AccountType.String(),
			u.CreatedAt.Format(exportTimeLayout),
		})
	}
	return rows, nil
}

func (s *Admin) ticketRows(ctx context.Context) ([][]string, error) {
	tickets, err := s.tickets.GetTickets(ctx, entities.TicketListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tickets for export: %w", err)
	}

	rows := [][]string{{
		"id", "user_id", "subject", "priority", "status", "created_at",
	}}
	for _, t := range tickets {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10),
			strconv.FormatInt(t.UserID, 10),
			t.Subject,
			t.Priority.String(),
			t.Status.String(),
			t.CreatedAt.Format(exportTimeLayout),
		})
	}
	return rows, nil
}

// renderCSV пишет каждое поле в двойных кавычках, как ждут даунстрим-скрипты.
// encoding/csv кавычит только при необходимости, поэтому рендер свой.
func renderCSV(rows [][]string) []byte {
	var buf bytes.Buffer
	for _, row := range rows {
		for i, field := range row {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
			buf.WriteByte('"')
		}
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

func formatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

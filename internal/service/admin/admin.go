package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlekSi/pointer"

	"amerex/internal/entities"
)

type Admin struct {
	shipments ShipmentRepository
	payments  PaymentRepository
	users     UserRepository
	tickets   TicketProvider
	txManager TxManager
	publisher Publisher
}

func New(
	shipments ShipmentRepository,
	payments PaymentRepository,
	users UserRepository,
	tickets TicketProvider,
	txManager TxManager,
	publisher Publisher,
) *Admin {
	return &Admin{
		shipments: shipments,
		payments:  payments,
		users:     users,
		tickets:   tickets,
		txManager: txManager,
		publisher: publisher,
	}
}

// GetShipments - список для консоли. Точные фильтры и диапазон дат уходят
// в SQL, поиск по номеру и именам с пагинацией выполняются в памяти.
func (s *Admin) GetShipments(ctx context.Context, filter entities.ShipmentListFilter) ([]entities.Shipment, int, error) {
	shipments, err := s.shipments.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list shipments: %w", err)
	}

	if filter.Search != "" {
		shipments = searchShipments(shipments, filter.Search)
	}
	total := len(shipments)

	return pageOf(shipments, filter.Page, filter.PerPage), total, nil
}

func (s *Admin) EditShipment(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error) {
	if modify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if modify.Status == nil &&
		modify.AdminApproved == nil &&
		modify.PaymentStatus == nil &&
		modify.CurrentLocation == nil &&
		modify.EstimatedDelivery == nil &&
		modify.TotalCost == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if modify.Status != nil && !isValidShipmentStatus(*modify.Status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.shipments.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return updated, nil
}

// ApproveShipment меняет только флаг подтверждения, статус не трогает.
func (s *Admin) ApproveShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	updated, err := s.shipments.Update(ctx, entities.ShipmentModify{
		ID:            pointer.To(id),
		AdminApproved: pointer.To(true),
	})
	if err != nil {
		return nil, fmt.Errorf("approve shipment: %w", err)
	}
	return updated, nil
}

// AddTrackingUpdate добавляет событие в историю и переводит отправление
// в новый статус с новой локацией. Событие в kafka некритично.
func (s *Admin) AddTrackingUpdate(ctx context.Context, shipmentID int64, status entities.ShipmentStatusType, location, message string) (*entities.Shipment, error) {
	if !isValidShipmentStatus(status) {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(location) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.shipments.InsertTrackingUpdate(ctx, &entities.TrackingUpdate{
			ShipmentID: shipmentID,
			Status:     status,
			Location:   location,
			Message:    message,
		}); err != nil {
			return fmt.Errorf("insert tracking update: %w", err)
		}

		var err error
		updated, err = s.shipments.Update(ctx, entities.ShipmentModify{
			ID:              pointer.To(shipmentID),
			Status:          pointer.To(status),
			CurrentLocation: pointer.To(location),
		})
		if err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.PublishShipmentStatusChanged(ctx, entities.ShipmentStatusEvent{
		ShipmentID:     updated.ID,
		TrackingNumber: updated.TrackingNumber,
		UserID:         updated.UserID,
		Status:         status,
		Location:       location,
		Message:        message,
		OccurredAt:     time.Now(),
	})

	return updated, nil
}

func (s *Admin) DeleteTrackingUpdate(ctx context.Context, id int64) error {
	if err := s.shipments.DeleteTrackingUpdate(ctx, id); err != nil {
		return fmt.Errorf("delete tracking update: %w", err)
	}
	return nil
}

func (s *Admin) GetPayments(ctx context.Context, filter entities.PaymentListFilter) ([]entities.Payment, int, error) {
	payments, err := s.payments.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}

	if filter.Search != "" {
		payments = searchPayments(payments, filter.Search)
	}
	total := len(payments)

	return pageOf(payments, filter.Page, filter.PerPage), total, nil
}

// ApprovePayment подтверждает платёж с ручным пруфом: платёж и отправление
// становятся оплаченными одной транзакцией.
func (s *Admin) ApprovePayment(ctx context.Context, paymentID int64) (*entities.Payment, error) {
	return s.resolvePayment(ctx, paymentID, entities.PaymentPaid, "Payment confirmed")
}

func (s *Admin) RejectPayment(ctx context.Context, paymentID int64) (*entities.Payment, error) {
	return s.resolvePayment(ctx, paymentID, entities.PaymentRejected, "Payment was rejected")
}

func (s *Admin) resolvePayment(ctx context.Context, paymentID int64, status entities.PaymentStatusType, message string) (*entities.Payment, error) {
	found, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if found.Status != entities.PaymentPending {
		return nil, fmt.Errorf("%w: payment is %s", ErrPaymentNotPending, found.Status)
	}

	shipmentStatus := status
	if status == entities.PaymentRejected {
		shipmentStatus = entities.PaymentFailed
	}

	var updated *entities.Payment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.payments.Update(ctx, entities.PaymentModify{
			ID:     pointer.To(paymentID),
			Status: pointer.To(status),
		})
		if err != nil {
			return fmt.Errorf("update payment: %w", err)
		}

		if _, err := s.shipments.Update(ctx, entities.ShipmentModify{
			ID:            pointer.To(found.ShipmentID),
			PaymentStatus: pointer.To(shipmentStatus),
		}); err != nil {
			return fmt.Errorf("update shipment payment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	shipmentEntity, err := s.shipments.GetByID(ctx, found.ShipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	s.publisher.PublishShipmentStatusChanged(ctx, entities.ShipmentStatusEvent{
		ShipmentID:     shipmentEntity.ID,
		TrackingNumber: shipmentEntity.TrackingNumber,
		UserID:         shipmentEntity.UserID,
		Status:         shipmentEntity.Status,
		Location:       shipmentEntity.CurrentLocation,
		Message:        message,
		OccurredAt:     time.Now(),
	})

	return updated, nil
}

func (s *Admin) GetUsers(ctx context.Context, filter entities.UserListFilter) ([]entities.User, int, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	if filter.Search != "" {
		users = searchUsers(users, filter.Search)
	}
	total := len(users)

	return pageOf(users, filter.Page, filter.PerPage), total, nil
}

func (s *Admin) GetTickets(ctx context.Context, filter entities.TicketListFilter) ([]entities.Ticket, int, error) {
	tickets, err := s.tickets.GetTickets(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}

	if filter.Search != "" {
		tickets = searchTickets(tickets, filter.Search)
	}
	total := len(tickets)

	return pageOf(tickets, filter.Page, filter.PerPage), total, nil
}

func isValidShipmentStatus(status entities.ShipmentStatusType) bool {
	switch status {
	case entities.ShipmentPending,
		entities.ShipmentPickedUp,
		entities.ShipmentInTransit,
		entities.ShipmentOutForDelivery,
		entities.ShipmentDelivered,
		entities.ShipmentOnHold,
		entities.ShipmentCancelled:
		return true
	default:
		return false
	}
}

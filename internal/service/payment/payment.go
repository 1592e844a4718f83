package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	"amerex/internal/entities"
	"amerex/internal/service/shipment"
	"amerex/pkg/logger"
)

const (
	intentCurrency = "usd"

	submittedMessage = "Shipment request submitted. Awaiting payment confirmation."
)

// SubmitRequest - подтверждение оплаты черновика одним из способов.
type SubmitRequest struct {
	DraftID string
	UserID  int64
	Method  entities.PaymentMethodType

	PaymentIntentID string
	ProofURL        string
}

type Payment struct {
	drafts     DraftProvider
	strategies StrategyFactory
	gateway    Gateway
	shipments  ShipmentRepository
	payments   PaymentRepository
	txManager  TxManager
	publisher  Publisher
	log        logger.Logger
}

func New(
	drafts DraftProvider,
	strategies StrategyFactory,
	gateway Gateway,
	shipments ShipmentRepository,
	payments PaymentRepository,
	txManager TxManager,
	publisher Publisher,
	log logger.Logger,
) *Payment {
	return &Payment{
		drafts:     drafts,
		strategies: strategies,
		gateway:    gateway,
		shipments:  shipments,
		payments:   payments,
		txManager:  txManager,
		publisher:  publisher,
		log:        log,
	}
}

// CreateIntent выпускает платёжное намерение на полную сумму черновика.
// Сумма уходит в процессинг в центах.
func (s *Payment) CreateIntent(ctx context.Context, draftID string, userID int64) (*entities.PaymentIntent, error) {
	draft, err := s.paymentReadyDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}

	amountCents := int64(math.Round(draft.Cost.TotalCost * 100))
	metadata := map[string]string{
		"customer_email": draft.Sender.Email,
		"route":          fmt.Sprintf("%s -> %s", deriveLocation(draft.Sender), deriveLocation(draft.Recipient)),
		"service":        draft.ServiceType.String(),
	}

	intent, err := s.gateway.CreateIntent(ctx, amountCents, intentCurrency, metadata)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return intent, nil
}

// Submit проводит оплату и создаёт отправление. Отправление, платёж и
// первое событие отслеживания пишутся одной транзакцией; при captured-оплате
// картой сбой записи превращается в ErrPaidNotRecorded без автоматического
// отката денег.
func (s *Payment) Submit(ctx context.Context, request SubmitRequest) (*entities.Shipment, error) {
	draft, err := s.paymentReadyDraft(ctx, request.DraftID, request.UserID)
	if err != nil {
		return nil, err
	}

	handler, err := s.strategies.GetHandler(request.Method)
	if err != nil {
		return nil, err
	}

	status, intentID, err := handler(ctx, request, draft.Cost.TotalCost)
	if err != nil {
		return nil, err
	}

	created := buildShipment(draft, request, status, intentID)

	trackingNumber, err := shipment.NewTrackingNumber()
	if err != nil {
		return nil, s.persistenceError(status, err)
	}
	created.TrackingNumber = trackingNumber

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentID, err := s.shipments.Create(ctx, created)
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}
		created.ID = shipmentID

		_, err = s.payments.Create(ctx, &entities.Payment{
			ShipmentID:      shipmentID,
			UserID:          request.UserID,
			TrackingNumber:  trackingNumber,
			Method:          request.Method,
			Status:          status,
			Amount:          draft.Cost.TotalCost,
			StripePaymentID: intentID,
			ProofURL:        request.ProofURL,
		})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		// отправления без единого события в истории быть не должно,
		// запись идёт той же транзакцией
		_, err = s.shipments.InsertTrackingUpdate(ctx, &entities.TrackingUpdate{
			ShipmentID: shipmentID,
			Status:     entities.ShipmentPending,
			Location:   created.Origin,
			Message:    submittedMessage,
		})
		if err != nil {
			return fmt.Errorf("insert initial tracking update: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, s.persistenceError(status, err)
	}

	s.publisher.PublishShipmentStatusChanged(ctx, entities.ShipmentStatusEvent{
		ShipmentID:     created.ID,
		TrackingNumber: created.TrackingNumber,
		UserID:         created.UserID,
		Status:         entities.ShipmentPending,
		Location:       created.Origin,
		Message:        submittedMessage,
		OccurredAt:     time.Now(),
	})

	if err := s.drafts.DeleteDraft(ctx, request.DraftID, request.UserID); err != nil {
		s.log.With(
			logger.NewField("draft_id", request.DraftID),
			logger.NewField("error", err.Error()),
		).Warn("draft was not removed after submit")
	}

	return created, nil
}

func (s *Payment) GetUserPayments(ctx context.Context, userID int64) ([]entities.Payment, error) {
	payments, err := s.payments.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user payments: %w", err)
	}
	return payments, nil
}

func (s *Payment) paymentReadyDraft(ctx context.Context, draftID string, userID int64) (*entities.Draft, error) {
	draft, err := s.drafts.GetDraft(ctx, draftID, userID)
	if err != nil {
		return nil, err
	}
	if draft.Step != entities.StepPayment {
		return nil, fmt.Errorf("%w: draft is at %s", ErrDraftNotReady, draft.Step)
	}
	return draft, nil
}

// Деньги уже списаны, а записи нет - отдельная ошибка с просьбой
// обратиться в поддержку.
func (s *Payment) persistenceError(status entities.PaymentStatusType, err error) error {
	if status == entities.PaymentPaid {
		return fmt.Errorf("%w: %s", ErrPaidNotRecorded, err)
	}
	return err
}

func buildShipment(draft *entities.Draft, request SubmitRequest, status entities.PaymentStatusType, intentID string) *entities.Shipment {
	origin := deriveLocation(draft.Sender)

	return &entities.Shipment{
		UserID: draft.UserID,

		Sender:    draft.Sender,
		Recipient: draft.Recipient,

		PickupInstructions:   draft.PickupInstructions,
		DeliveryInstructions: draft.DeliveryInstructions,

		Package: draft.Package,

		ServiceType:       draft.ServiceType,
		PickupDate:        draft.PickupDate,
		PickupTime:        draft.PickupTime,
		EstimatedDelivery: draft.EstimatedDelivery,

		PaymentMethod:   request.Method,
		PaymentStatus:   status,
		StripePaymentID: intentID,
		PaymentProofURL: request.ProofURL,

		Cost: draft.Cost,

		Status:          entities.ShipmentPending,
		AdminApproved:   false,
		IsInternational: draft.IsInternational,

		Origin:          origin,
		Destination:     deriveLocation(draft.Recipient),
		CurrentLocation: origin,

		VideoProofURL: draft.VideoProofURL,
		VideoNotes:    draft.VideoNotes,

		TaxID:       draft.TaxID,
		HSCode:      draft.HSCode,
		ContentType: draft.ContentType,
	}
}

func deriveLocation(party entities.Party) string {
	return fmt.Sprintf("%s, %s", party.City, party.Country)
}

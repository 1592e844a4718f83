package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"amerex/internal/entities"
	"amerex/pkg/logger"
)

type statusChangedEvent struct {
	ShipmentID     int64  `json:"shipment_id"`
	TrackingNumber string `json:"tracking_number"`
	UserID         int64  `json:"user_id"`
	Status         string `json:"status"`
	Location       string `json:"location"`
	Message        string `json:"message"`
	OccurredAt     string `json:"occurred_at"`
}

type Handler struct {
	notifications            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifications Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notifications:            notifications,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("tracking", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	title := fmt.Sprintf("Shipment %s update", event.TrackingNumber)
	body := event.Message
	if body == "" {
		body = fmt.Sprintf("Shipment status changed to %s", event.Status)
	}

	_, err = h.notifications.Create(ctx, event.UserID, entities.NotificationShipment, title, body)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("shipment.status.changed handler failed to create notification")
		sess.MarkMessage(message, "")
		return false
	}

	// почтовый шлюз пока не подключён, отправку заменяет запись в лог
	msgLog.With(
		logger.NewField("user", event.UserID),
	).Info("shipment.status.changed: notification created, email dispatch requested")

	sess.MarkMessage(message, "")
	return false
}

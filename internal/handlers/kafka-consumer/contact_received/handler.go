package contact_received

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"amerex/pkg/logger"
)

type contactReceivedEvent struct {
	MessageID  int64  `json:"message_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	OccurredAt string `json:"occurred_at"`
}

type Handler struct {
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, timeout time.Duration) *Handler {
	return &Handler{
		log:                      log.With(),
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
				h.log.Info("contact.received: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(sess, message)

		case <-sess.Context().Done():
			h.log.Info("contact.received: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) {
	var event contactReceivedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("contact.received handler received bad message")
		sess.MarkMessage(message, "")
		return
	}

	// почтовый шлюз пока не подключён, отправку заменяет запись в лог
	h.log.With(
		logger.NewField("message_id", event.MessageID),
		logger.NewField("email", event.Email),
		logger.NewField("subject", event.Subject),
		logger.NewField("offset", message.Offset),
	).Info("contact.received: acknowledgement email dispatch requested")

	sess.MarkMessage(message, "")
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"

	"amerex/internal/entities"
	"amerex/pkg/logger"
)

// Producer публикует доменные события. Ошибки публикации не возвращаются
// наружу: события некритичны для основного сценария, сбой только логируется.
type Producer struct {
	log                 logger.Logger
	producer            sarama.SyncProducer
	shipmentStatusTopic string
	contactTopic        string
}

func NewSyncProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true

	return cfg, nil
}

func NewProducer(log logger.Logger, versionStr string, brokers []string, shipmentStatusTopic, contactTopic string) (*Producer, error) {
	saramaConfig, err := NewSyncProducerConfig(versionStr)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
		),
		producer:            producer,
		shipmentStatusTopic: shipmentStatusTopic,
		contactTopic:        contactTopic,
	}, nil
}

func (p *Producer) PublishShipmentStatusChanged(ctx context.Context, event entities.ShipmentStatusEvent) {
	p.publish(ctx, p.shipmentStatusTopic, event.TrackingNumber, event)
}

func (p *Producer) PublishContactReceived(ctx context.Context, message entities.ContactMessage) {
	event := entities.ContactReceivedEvent{
		MessageID:  message.ID,
		Name:       message.Name,
		Email:      message.Email,
		Subject:    message.Subject,
		OccurredAt: message.CreatedAt,
	}
	p.publish(ctx, p.contactTopic, strconv.FormatInt(message.ID, 10), event)
}

func (p *Producer) publish(ctx context.Context, topic, key string, event any) {
	if ctx.Err() != nil {
		p.log.With(
			logger.NewField("topic", topic),
			logger.NewField("error", ctx.Err()),
		).Warn("publish skipped, context done")
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.With(
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		).Error("failed to marshal event")
		return
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.With(
			logger.NewField("topic", topic),
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Error("failed to publish event")
		return
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("key", key),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("event published")
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

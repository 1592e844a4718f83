//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_submit_post_test
package payment_submit_post

import (
	"context"

	"amerex/internal/entities"
	"amerex/internal/service/payment"
	"amerex/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Submit(ctx context.Context, request payment.SubmitRequest) (*entities.Shipment, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_post_test
package quote_post

import (
	"context"

	"amerex/internal/entities"
	"amerex/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Submit(ctx context.Context, request entities.Quote) (*entities.Quote, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_calculate_post_test
package quote_calculate_post

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
	Calculate(
		ctx context.Context,
		tier entities.QuoteTierType,
		weight, declaredValue float64,
		options entities.QuoteOptions,
	) (entities.QuoteBreakdown, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, quote *entities.Quote) (int64, error)
	CountByDay(ctx context.Context, day string) (int64, error)
	GetAll(ctx context.Context) ([]entities.Quote, error)
}

type Pricer interface {
	ComputeQuote(tier entities.QuoteTierType, weight, declaredValue float64, options entities.QuoteOptions) (entities.QuoteBreakdown, error)
}

type Cooldown interface {
	Allow(key string) bool
}

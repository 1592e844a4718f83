//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=coupon_test
package coupon

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*entities.Coupon, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wizard_test
package wizard

import (
	"context"
	"time"

	"amerex/internal/entities"
	"amerex/internal/service/pricing"
)

type DraftStorage interface {
	Create(ctx context.Context, draft *entities.Draft) (string, error)
	Get(ctx context.Context, id string) (*entities.Draft, error)
	Update(ctx context.Context, draft *entities.Draft) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type Pricer interface {
	ComputeShipmentCost(basePrice, declaredValue float64, hasInsurance, isInternational bool, coupon *entities.Coupon) entities.CostBreakdown
	ServiceTariff(level entities.ServiceLevelType) (pricing.Tariff, error)
}

type CouponProvider interface {
	GetActiveByCode(ctx context.Context, code string) (*entities.Coupon, error)
}

type EstimateFactory interface {
	CalculateEstimate(serviceType entities.ServiceLevelType, pickupDate time.Time) time.Time
}

package delivery_estimate

import (
	"time"

	"amerex/internal/entities"
)

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

func (d *DeliveryEstimateFactory) CalculateEstimate(serviceType entities.ServiceLevelType, pickupDate time.Time) time.Time {
	switch serviceType {
	case entities.ServiceExpress:
		return pickupDate.AddDate(0, 0, 2)
	case entities.ServiceFreight:
		return pickupDate.AddDate(0, 0, 10)
	default:
		return pickupDate.AddDate(0, 0, 5)
	}
}

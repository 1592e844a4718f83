//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_shipment_put_test
package admin_shipment_put

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
	EditShipment(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error)
}

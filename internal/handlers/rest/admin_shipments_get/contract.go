//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_shipments_get_test
package admin_shipments_get

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
	GetShipments(ctx context.Context, filter entities.ShipmentListFilter) ([]entities.Shipment, int, error)
}

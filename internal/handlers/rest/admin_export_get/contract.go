//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_export_get_test
package admin_export_get

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
	ExportCSV(ctx context.Context, entity string, shipmentFilter entities.ShipmentListFilter, paymentFilter entities.PaymentListFilter) ([]byte, string, error)
}

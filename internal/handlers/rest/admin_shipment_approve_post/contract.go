//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_shipment_approve_post_test
package admin_shipment_approve_post

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
	ApproveShipment(ctx context.Context, id int64) (*entities.Shipment, error)
}

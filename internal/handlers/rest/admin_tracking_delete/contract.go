//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_tracking_delete_test
package admin_tracking_delete

import (
	"context"

	"amerex/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteTrackingUpdate(ctx context.Context, id int64) error
}

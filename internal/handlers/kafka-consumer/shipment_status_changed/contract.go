package shipment_status_changed

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
	Create(ctx context.Context, userID int64, kind entities.NotificationKindType, title, message string) (int64, error)
}

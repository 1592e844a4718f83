//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_read_post_test
package notifications_read_post

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
	MarkAllRead(ctx context.Context, userID int64) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_international_post_test
package draft_international_post

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
	SetInternational(ctx context.Context, draftID string, userID int64, enabled bool) (*entities.Draft, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=addresses_get_test
package addresses_get

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
	GetAddresses(ctx context.Context, userID int64) ([]entities.Address, error)
}

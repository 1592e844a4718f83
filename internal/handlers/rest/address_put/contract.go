//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_put_test
package address_put

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
	UpdateAddress(ctx context.Context, userID int64, modify entities.AddressModify) (*entities.Address, error)
}

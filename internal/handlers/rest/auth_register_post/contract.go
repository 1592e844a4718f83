//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_register_post_test
package auth_register_post

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
	Register(ctx context.Context, email, password, firstName, lastName string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, *entities.User, error)
}

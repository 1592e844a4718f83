package auth

import (
	"context"

	"amerex/pkg/logger"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_reply_post_test
package ticket_reply_post

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
	Reply(ctx context.Context, ticketID, authorID int64, isAdmin bool, message string) (*entities.Ticket, error)
}

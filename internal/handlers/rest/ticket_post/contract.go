//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_post_test
package ticket_post

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
	Create(ctx context.Context, userID int64, subject, message string, priority entities.TicketPriorityType) (*entities.Ticket, error)
}

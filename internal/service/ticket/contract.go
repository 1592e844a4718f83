//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ticket_test
package ticket

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, ticket *entities.Ticket) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Ticket, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Ticket, error)
	List(ctx context.Context, filter entities.TicketListFilter) ([]entities.Ticket, error)
	InsertReply(ctx context.Context, reply *entities.TicketReply) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status entities.TicketStatusType) error
	CountByStatus(ctx context.Context, status entities.TicketStatusType) (int64, error)
}

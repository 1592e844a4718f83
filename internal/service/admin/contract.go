//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_test
package admin

import (
	"context"

	"amerex/internal/entities"
)

type ShipmentRepository interface {
	List(ctx context.Context, filter entities.ShipmentListFilter) ([]entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error)
	InsertTrackingUpdate(ctx context.Context, update *entities.TrackingUpdate) (int64, error)
	DeleteTrackingUpdate(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entities.ShipmentStatusType) (int64, error)
}

type PaymentRepository interface {
	List(ctx context.Context, filter entities.PaymentListFilter) ([]entities.Payment, error)
	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	Update(ctx context.Context, modify entities.PaymentModify) (*entities.Payment, error)
	SumPaid(ctx context.Context) (float64, error)
}

type UserRepository interface {
	List(ctx context.Context, filter entities.UserListFilter) ([]entities.User, error)
	Count(ctx context.Context) (int64, error)
}

type TicketProvider interface {
	GetTickets(ctx context.Context, filter entities.TicketListFilter) ([]entities.Ticket, error)
	CountByStatus(ctx context.Context, status entities.TicketStatusType) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher шлёт событие смены статуса, сбой публикации только логируется.
type Publisher interface {
	PublishShipmentStatusChanged(ctx context.Context, event entities.ShipmentStatusEvent)
}

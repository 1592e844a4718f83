//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"amerex/internal/entities"
)

// ExecuteFn проводит оплату выбранным способом и возвращает статус платежа
// и id платёжного намерения процессинга, если оно было.
type ExecuteFn func(ctx context.Context, request SubmitRequest, amount float64) (entities.PaymentStatusType, string, error)

type DraftProvider interface {
	GetDraft(ctx context.Context, draftID string, userID int64) (*entities.Draft, error)
	DeleteDraft(ctx context.Context, draftID string, userID int64) error
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*entities.PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*entities.PaymentIntent, error)
}

type StrategyFactory interface {
	GetHandler(method entities.PaymentMethodType) (ExecuteFn, error)
}

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entities.Shipment) (int64, error)
	InsertTrackingUpdate(ctx context.Context, update *entities.TrackingUpdate) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) (int64, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Payment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher шлёт событие смены статуса, сбой публикации только логируется.
type Publisher interface {
	PublishShipmentStatusChanged(ctx context.Context, event entities.ShipmentStatusEvent)
}

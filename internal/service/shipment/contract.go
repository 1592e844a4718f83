//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipment *entities.Shipment) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Shipment, error)
	List(ctx context.Context, filter entities.ShipmentListFilter) ([]entities.Shipment, error)
	Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error)
	InsertTrackingUpdate(ctx context.Context, update *entities.TrackingUpdate) (int64, error)
	GetTrackingUpdates(ctx context.Context, shipmentID int64) ([]entities.TrackingUpdate, error)
	DeleteTrackingUpdate(ctx context.Context, id int64) error
}

type Cooldown interface {
	Allow(key string) bool
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification *entities.Notification) (int64, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAllRead(ctx context.Context, userID int64) error
}

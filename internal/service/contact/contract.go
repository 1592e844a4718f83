//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=contact_test
package contact

import (
	"context"

	"amerex/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, message *entities.ContactMessage) (int64, error)
}

// Publisher отправляет событие для письма-подтверждения.
// Ошибки публикации не возвращаются, событие некритично.
type Publisher interface {
	PublishContactReceived(ctx context.Context, message entities.ContactMessage)
}

type Cooldown interface {
	Allow(key string) bool
}

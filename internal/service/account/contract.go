//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"amerex/internal/entities"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, modify entities.UserModify) (*entities.User, error)
}

type AddressRepository interface {
	Create(ctx context.Context, address *entities.Address) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Address, error)
	GetByUser(ctx context.Context, userID int64) ([]entities.Address, error)
	Update(ctx context.Context, modify entities.AddressModify) (*entities.Address, error)
	Delete(ctx context.Context, id int64) error
	ClearDefault(ctx context.Context, userID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

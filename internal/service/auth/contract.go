//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"amerex/internal/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}

type TokenStrategy interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

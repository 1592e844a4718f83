package account

import (
	"errors"

	"amerex/internal/service/auth"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAccountType    = errors.New("invalid account type")
	ErrAddressNotFound       = errors.New("address not found")
	ErrForeignAddress        = errors.New("address belongs to another user")

	// Репозиторий пользователей общий с auth, сентинел должен совпадать.
	ErrUserNotFound = auth.ErrUserNotFound
)

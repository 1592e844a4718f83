package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amerex/internal/entities"
)

type Account struct {
	users     UserRepository
	addresses AddressRepository
	txManager TxManager
}

func New(users UserRepository, addresses AddressRepository, txManager TxManager) *Account {
	return &Account{
		users:     users,
		addresses: addresses,
		txManager: txManager,
	}
}

func (s *Account) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Account) UpdateProfile(ctx context.Context, modify entities.UserModify) (*entities.User, error) {
	if modify.FirstName == nil &&
		modify.LastName == nil &&
		modify.Phone == nil &&
		modify.Company == nil &&
		modify.AccountType == nil &&
		modify.AvatarURL == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if modify.AccountType != nil && !isValidAccountType(*modify.AccountType) {
		return nil, ErrInvalidAccountType
	}

	user, err := s.users.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Account) GetAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	addresses, err := s.addresses.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get addresses: %w", err)
	}
	return addresses, nil
}

// CreateAddress сохраняет адрес. Адрес по умолчанию один на пользователя,
// смена снимает флаг с прежнего в той же транзакции.
func (s *Account) CreateAddress(ctx context.Context, address entities.Address) (*entities.Address, error) {
	if strings.TrimSpace(address.Name) == "" ||
		strings.TrimSpace(address.Address) == "" ||
		strings.TrimSpace(address.City) == "" ||
		strings.TrimSpace(address.Country) == "" {
		return nil, ErrMissingRequiredFields
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if address.IsDefault {
			if err := s.addresses.ClearDefault(ctx, address.UserID); err != nil {
				return fmt.Errorf("clear default address: %w", err)
			}
		}

		id, err := s.addresses.Create(ctx, &address)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		address.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (s *Account) UpdateAddress(ctx context.Context, userID int64, modify entities.AddressModify) (*entities.Address, error) {
	if modify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if _, err := s.ownedAddress(ctx, userID, *modify.ID); err != nil {
		return nil, err
	}

	var updated *entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if modify.IsDefault != nil && *modify.IsDefault {
			if err := s.addresses.ClearDefault(ctx, userID); err != nil {
				return fmt.Errorf("clear default address: %w", err)
			}
		}

		var err error
		updated, err = s.addresses.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Account) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	if _, err := s.ownedAddress(ctx, userID, addressID); err != nil {
		return err
	}
	if err := s.addresses.Delete(ctx, addressID); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func (s *Account) ownedAddress(ctx context.Context, userID, addressID int64) (*entities.Address, error) {
	address, err := s.addresses.GetByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	if address.UserID != userID {
		return nil, ErrForeignAddress
	}
	return address, nil
}

func isValidAccountType(accountType entities.AccountTypeType) bool {
	switch accountType {
	case entities.AccountPersonal, entities.AccountBusiness:
		return true
	default:
		return false
	}
}

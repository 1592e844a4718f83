package address

import (
	"amerex/internal/entities"
)

func ToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}

	return &entities.Address{
		ID:        a.ID,
		UserID:    a.UserID,
		Label:     a.Label,
		Name:      a.Name,
		Phone:     a.Phone,
		Address:   a.Address,
		AptSuite:  a.AptSuite,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ToDomainList(addressesDB []AddressDB) []entities.Address {
	if len(addressesDB) == 0 {
		return []entities.Address{}
	}

	result := make([]entities.Address, len(addressesDB))
	for i, addressDB := range addressesDB {
		result[i] = *ToDomain(&addressDB)
	}
	return result
}

package user

import (
	"amerex/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Company:      u.Company,
		Role:         entities.UserRoleType(u.Role),
		AccountType:  entities.AccountTypeType(u.AccountType),
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.FirstName != nil {
		userDB.FirstName = userModify.FirstName
	}
	if userModify.LastName != nil {
		userDB.LastName = userModify.LastName
	}
	if userModify.Phone != nil {
		userDB.Phone = userModify.Phone
	}
	if userModify.Company != nil {
		userDB.Company = userModify.Company
	}
	if userModify.AccountType != nil {
		accountType := userModify.AccountType.String()
		userDB.AccountType = &accountType
	}
	if userModify.AvatarURL != nil {
		userDB.AvatarURL = userModify.AvatarURL
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}

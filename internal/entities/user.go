package entities

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string

	FirstName string
	LastName  string
	Phone     string
	Company   string

	Role        UserRoleType
	AccountType AccountTypeType
	AvatarURL   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleAdmin UserRoleType = "admin"
	// RoleAdministrator - легаси-значение роли, равноправно с RoleAdmin.
	RoleAdministrator UserRoleType = "administrator"
)

func (r UserRoleType) String() string {
	return string(r)
}

func (r UserRoleType) IsAdmin() bool {
	return r == RoleAdmin || r == RoleAdministrator
}

type AccountTypeType string

const (
	AccountPersonal AccountTypeType = "personal"
	AccountBusiness AccountTypeType = "business"
)

func (t AccountTypeType) String() string {
	return string(t)
}

// UserModify - частичное обновление профиля.
type UserModify struct {
	ID          *int64
	FirstName   *string
	LastName    *string
	Phone       *string
	Company     *string
	AccountType *AccountTypeType
	AvatarURL   *string
}

type UserListFilter struct {
	Role *UserRoleType

	Search  string
	Page    int
	PerPage int
}

package user

import "time"

type UserDB struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Company      string
	Role         string
	AccountType  string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID          *int64
	FirstName   *string
	LastName    *string
	Phone       *string
	Company     *string
	AccountType *string
	AvatarURL   *string
}

package entities

import "time"

type Address struct {
	ID     int64
	UserID int64

	Label    string
	Name     string
	Phone    string
	Address  string
	AptSuite string
	City     string
	State    string
	Zip      string
	Country  string

	IsDefault bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddressModify - частичное обновление сохранённого адреса.
type AddressModify struct {
	ID        *int64
	Label     *string
	Name      *string
	Phone     *string
	Address   *string
	AptSuite  *string
	City      *string
	State     *string
	Zip       *string
	Country   *string
	IsDefault *bool
}

package entities

import "time"

type Notification struct {
	ID     int64
	UserID int64

	Title   string
	Message string
	Kind    NotificationKindType

	IsRead bool

	CreatedAt time.Time
}

type NotificationKindType string

const (
	NotificationShipment NotificationKindType = "shipment"
	NotificationPayment  NotificationKindType = "payment"
	NotificationSupport  NotificationKindType = "support"
)

func (k NotificationKindType) String() string {
	return string(k)
}

package entities

import "time"

// ContactReceivedEvent публикуется в kafka для письма-подтверждения.
type ContactReceivedEvent struct {
	MessageID  int64     `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ShipmentStatusEvent публикуется в kafka при каждом изменении статуса.
type ShipmentStatusEvent struct {
	ShipmentID     int64              `json:"shipment_id"`
	TrackingNumber string             `json:"tracking_number"`
	UserID         int64              `json:"user_id"`
	Status         ShipmentStatusType `json:"status"`
	Location       string             `json:"location"`
	Message        string             `json:"message"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

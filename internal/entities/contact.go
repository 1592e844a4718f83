package entities

import "time"

// ContactMessage - обращение с публичной формы, без привязки к аккаунту.
type ContactMessage struct {
	ID int64

	Name    string
	Email   string
	Subject string
	Message string

	CreatedAt time.Time
}

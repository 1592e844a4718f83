package ticket

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrForeignTicket         = errors.New("ticket belongs to another user")
	ErrTicketClosed          = errors.New("ticket is closed")
)

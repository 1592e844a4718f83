package ticket

import "time"

type TicketDB struct {
	ID        int64
	UserID    int64
	Subject   string
	Message   string
	Priority  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketReplyDB struct {
	ID        int64
	TicketID  int64
	AuthorID  int64
	IsAdmin   bool
	Message   string
	CreatedAt time.Time
}

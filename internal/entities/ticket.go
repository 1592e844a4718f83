package entities

import "time"

type Ticket struct {
	ID     int64
	UserID int64

	Subject  string
	Message  string
	Priority TicketPriorityType
	Status   TicketStatusType

	Replies []TicketReply

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketReply struct {
	ID       int64
	TicketID int64
	AuthorID int64
	IsAdmin  bool
	Message  string

	CreatedAt time.Time
}

type TicketStatusType string

const (
	TicketOpen     TicketStatusType = "open"
	TicketAnswered TicketStatusType = "answered"
	TicketClosed   TicketStatusType = "closed"
)

func (s TicketStatusType) String() string {
	return string(s)
}

type TicketPriorityType string

const (
	PriorityLow    TicketPriorityType = "low"
	PriorityNormal TicketPriorityType = "normal"
	PriorityHigh   TicketPriorityType = "high"
)

func (p TicketPriorityType) String() string {
	return string(p)
}

type TicketListFilter struct {
	Status *TicketStatusType
	UserID *int64

	Search  string
	Page    int
	PerPage int
}

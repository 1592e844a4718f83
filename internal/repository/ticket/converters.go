package ticket

import (
	"amerex/internal/entities"
)

func ToDomain(t *TicketDB) *entities.Ticket {
	if t == nil {
		return nil
	}

	return &entities.Ticket{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Message:   t.Message,
		Priority:  entities.TicketPriorityType(t.Priority),
		Status:    entities.TicketStatusType(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToDomainList(ticketsDB []TicketDB) []entities.Ticket {
	if len(ticketsDB) == 0 {
		return []entities.Ticket{}
	}

	result := make([]entities.Ticket, len(ticketsDB))
	for i, ticketDB := range ticketsDB {
		result[i] = *ToDomain(&ticketDB)
	}
	return result
}

func ToReplyDomain(r *TicketReplyDB) *entities.TicketReply {
	if r == nil {
		return nil
	}

	return &entities.TicketReply{
		ID:        r.ID,
		TicketID:  r.TicketID,
		AuthorID:  r.AuthorID,
		IsAdmin:   r.IsAdmin,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

func ToReplyDomainList(repliesDB []TicketReplyDB) []entities.TicketReply {
	if len(repliesDB) == 0 {
		return []entities.TicketReply{}
	}

	result := make([]entities.TicketReply, len(repliesDB))
	for i, replyDB := range repliesDB {
		result[i] = *ToReplyDomain(&replyDB)
	}
	return result
}

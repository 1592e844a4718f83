package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"amerex/internal/entities"
)

type Ticket struct {
	repository Repository
}

func New(repository Repository) *Ticket {
	return &Ticket{
		repository: repository,
	}
}

func (s *Ticket) Create(ctx context.Context, userID int64, subject, message string, priority entities.TicketPriorityType) (*entities.Ticket, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	created := &entities.Ticket{
		UserID:   userID,
		Subject:  strings.TrimSpace(subject),
		Message:  strings.TrimSpace(message),
		Priority: priority,
		Status:   entities.TicketOpen,
	}

	id, err := s.repository.Create(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	created.ID = id

	return created, nil
}

// Reply добавляет сообщение в тикет. Ответ админа переводит тикет в answered,
// ответ клиента по отвеченному тикету возвращает его в open.
func (s *Ticket) Reply(ctx context.Context, ticketID, authorID int64, isAdmin bool, message string) (*entities.Ticket, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if !isAdmin && found.UserID != authorID {
		return nil, ErrForeignTicket
	}
	if found.Status == entities.TicketClosed {
		return nil, ErrTicketClosed
	}

	reply := &entities.TicketReply{
		TicketID: ticketID,
		AuthorID: authorID,
		IsAdmin:  isAdmin,
		Message:  strings.TrimSpace(message),
	}
	if _, err := s.repository.InsertReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("insert reply: %w", err)
	}

	nextStatus := entities.TicketOpen
	if isAdmin {
		nextStatus = entities.TicketAnswered
	}
	if nextStatus != found.Status {
		if err := s.repository.UpdateStatus(ctx, ticketID, nextStatus); err != nil {
			return nil, fmt.Errorf("update ticket status: %w", err)
		}
	}

	return s.GetTicket(ctx, ticketID, authorID, isAdmin)
}

func (s *Ticket) Close(ctx context.Context, ticketID int64) error {
	if _, err := s.repository.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("get ticket: %w", err)
	}
	if err := s.repository.UpdateStatus(ctx, ticketID, entities.TicketClosed); err != nil {
		return fmt.Errorf("close ticket: %w", err)
	}
	return nil
}

func (s *Ticket) GetTicket(ctx context.Context, ticketID, callerID int64, isAdmin bool) (*entities.Ticket, error) {
	found, err := s.repository.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if !isAdmin && found.UserID != callerID {
		return nil, ErrForeignTicket
	}
	return found, nil
}

func (s *Ticket) GetUserTickets(ctx context.Context, userID int64) ([]entities.Ticket, error) {
	tickets, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user tickets: %w", err)
	}
	return tickets, nil
}

func (s *Ticket) GetTickets(ctx context.Context, filter entities.TicketListFilter) ([]entities.Ticket, error) {
	tickets, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *Ticket) CountByStatus(ctx context.Context, status entities.TicketStatusType) (int64, error) {
	count, err := s.repository.CountByStatus(ctx, status)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return count, nil
}

func isValidPriority(priority entities.TicketPriorityType) bool {
	switch priority {
	case entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh:
		return true
	default:
		return false
	}
}

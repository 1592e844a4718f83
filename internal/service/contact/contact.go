package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"amerex/internal/entities"
)

const (
	minMessageLength = 10
	maxMessageLength = 1000
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Contact struct {
	repository Repository
	publisher  Publisher
	cooldown   Cooldown
}

func New(repository Repository, publisher Publisher, cooldown Cooldown) *Contact {
	return &Contact{
		repository: repository,
		publisher:  publisher,
		cooldown:   cooldown,
	}
}

func (s *Contact) Submit(ctx context.Context, message entities.ContactMessage) (*entities.ContactMessage, error) {
	if strings.TrimSpace(message.Name) == "" ||
		strings.TrimSpace(message.Email) == "" ||
		strings.TrimSpace(message.Subject) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !emailRegexp.MatchString(strings.TrimSpace(message.Email)) {
		return nil, ErrInvalidEmail
	}

	body := strings.TrimSpace(message.Message)
	if len(body) < minMessageLength || len(body) > maxMessageLength {
		return nil, ErrMessageLength
	}
	message.Message = body

	if !s.cooldown.Allow(strings.ToLower(strings.TrimSpace(message.Email))) {
		return nil, ErrTooFrequent
	}

	id, err := s.repository.Create(ctx, &message)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	message.ID = id

	// письмо-подтверждение некритично, сбой публикации не ломает отправку
	s.publisher.PublishContactReceived(ctx, message)

	return &message, nil
}

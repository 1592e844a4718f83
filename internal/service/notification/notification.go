package notification

import (
	"context"
	"fmt"

	"amerex/internal/entities"
)

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{
		repository: repository,
	}
}

func (s *Notification) Create(ctx context.Context, userID int64, kind entities.NotificationKindType, title, message string) (int64, error) {
	id, err := s.repository.Create(ctx, &entities.Notification{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return 0, fmt.Errorf("create notification: %w", err)
	}
	return id, nil
}

func (s *Notification) GetUserNotifications(ctx context.Context, userID int64) ([]entities.Notification, error) {
	notifications, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}
	return notifications, nil
}

func (s *Notification) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	count, err := s.repository.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (s *Notification) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.repository.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

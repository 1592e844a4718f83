package notification

import (
	"context"
	"fmt"
	"time"

	"amerex/internal/entities"
)

type NotificationDB struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Kind      string
	IsRead    bool
	CreatedAt time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationEntity *entities.Notification) (int64, error) {
	query := `INSERT INTO notifications (user_id, title, message, kind)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.UserID,
		notificationEntity.Title,
		notificationEntity.Message,
		notificationEntity.Kind.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Notification, error) {
	query := `SELECT id, user_id, title, message, kind, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.UserID,
			&notificationModel.Title,
			&notificationModel.Message,
			&notificationModel.Kind,
			&notificationModel.IsRead,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
		}
		notificationModels = append(notificationModels, notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getbyuser error: %w", err)
	}

	result := make([]entities.Notification, len(notificationModels))
	for i, notificationModel := range notificationModels {
		result[i] = entities.Notification{
			ID:        notificationModel.ID,
			UserID:    notificationModel.UserID,
			Title:     notificationModel.Title,
			Message:   notificationModel.Message,
			Kind:      entities.NotificationKindType(notificationModel.Kind),
			IsRead:    notificationModel.IsRead,
			CreatedAt: notificationModel.CreatedAt,
		}
	}
	return result, nil
}

func (r *Repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE`

	var count int64
	err := r.querier.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository count unread error: %w", err)
	}

	return count, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int64) error {
	query := `UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`

	_, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark all read error: %w", err)
	}

	return nil
}

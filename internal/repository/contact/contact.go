package contact

import (
	"context"
	"fmt"

	"amerex/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, message *entities.ContactMessage) (int64, error) {
	query := `INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected contact repository create error: %w", err)
	}

	return id, nil
}

package ticket

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/service/ticket"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const ticketColumns = `id, user_id, subject, message, priority, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, ticketEntity *entities.Ticket) (int64, error) {
	query := `INSERT INTO tickets (user_id, subject, message, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		ticketEntity.UserID,
		ticketEntity.Subject,
		ticketEntity.Message,
		ticketEntity.Priority.String(),
		ticketEntity.Status.String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository create error: %w", err)
	}

	return id, nil
}

// GetByID возвращает тикет вместе с перепиской.
func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM tickets
		WHERE id = $1`

	var ticketModel TicketDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&ticketModel.ID,
		&ticketModel.UserID,
		&ticketModel.Subject,
		&ticketModel.Message,
		&ticketModel.Priority,
		&ticketModel.Status,
		&ticketModel.CreatedAt,
		&ticketModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("unexpected ticket repository getbyid error: %w", err)
	}

	replies, err := r.getReplies(ctx, id)
	if err != nil {
		return nil, err
	}

	ticketEntity := ToDomain(&ticketModel)
	ticketEntity.Replies = replies
	return ticketEntity, nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM tickets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository getbyuser error: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

func (r *Repository) List(ctx context.Context, filter entities.TicketListFilter) ([]entities.Ticket, error) {
	builder := qb.
		Select(ticketColumns).
		From("tickets").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository list error: %w", err)
	}
	defer rows.Close()

	return collectTickets(rows)
}

func (r *Repository) InsertReply(ctx context.Context, reply *entities.TicketReply) (int64, error) {
	query := `INSERT INTO ticket_replies (ticket_id, author_id, is_admin, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		reply.TicketID,
		reply.AuthorID,
		reply.IsAdmin,
		reply.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository insert reply error: %w", err)
	}

	return id, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.TicketStatusType) error {
	query := `UPDATE tickets
		SET status = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.querier.Exec(ctx, query, status.String(), id)
	if err != nil {
		return fmt.Errorf("unexpected ticket repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ticket.ErrTicketNotFound
	}

	return nil
}

func (r *Repository) CountByStatus(ctx context.Context, status entities.TicketStatusType) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE status = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, status.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected ticket repository count by status error: %w", err)
	}

	return count, nil
}

func (r *Repository) getReplies(ctx context.Context, ticketID int64) ([]entities.TicketReply, error) {
	query := `SELECT id, ticket_id, author_id, is_admin, message, created_at
		FROM ticket_replies
		WHERE ticket_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository get replies error: %w", err)
	}
	defer rows.Close()

	replyModels := make([]TicketReplyDB, 0, 8)
	for rows.Next() {
		var replyModel TicketReplyDB
		err := rows.Scan(
			&replyModel.ID,
			&replyModel.TicketID,
			&replyModel.AuthorID,
			&replyModel.IsAdmin,
			&replyModel.Message,
			&replyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ticket repository get replies error: %w", err)
		}
		replyModels = append(replyModels, replyModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository get replies error: %w", err)
	}

	return ToReplyDomainList(replyModels), nil
}

func collectTickets(rows pgx.Rows) ([]entities.Ticket, error) {
	ticketModels := make([]TicketDB, 0, 8)
	for rows.Next() {
		var ticketModel TicketDB
		err := rows.Scan(
			&ticketModel.ID,
			&ticketModel.UserID,
			&ticketModel.Subject,
			&ticketModel.Message,
			&ticketModel.Priority,
			&ticketModel.Status,
			&ticketModel.CreatedAt,
			&ticketModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected ticket repository scan error: %w", err)
		}
		ticketModels = append(ticketModels, ticketModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected ticket repository rows error: %w", err)
	}

	return ToDomainList(ticketModels), nil
}

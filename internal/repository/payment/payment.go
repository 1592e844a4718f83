package payment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const paymentColumns = `id, shipment_id, user_id, tracking_number, method, status, amount, stripe_payment_id, proof_url, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, paymentEntity *entities.Payment) (int64, error) {
	query := `INSERT INTO payments (shipment_id, user_id, tracking_number, method, status, amount, stripe_payment_id, proof_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		paymentEntity.ShipmentID,
		paymentEntity.UserID,
		paymentEntity.TrackingNumber,
		paymentEntity.Method.String(),
		paymentEntity.Status.String(),
		paymentEntity.Amount,
		paymentEntity.StripePaymentID,
		paymentEntity.ProofURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1`

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbyid error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository getbyuser error: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *Repository) List(ctx context.Context, filter entities.PaymentListFilter) ([]entities.Payment, error) {
	builder := qb.
		Select(paymentColumns).
		From("payments").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Method != nil {
		builder = builder.Where(sq.Eq{"method": filter.Method.String()})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list error: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *Repository) Update(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	builder := qb.
		Update("payments")

	if paymentModify.Status != nil {
		builder = builder.Set("status", paymentModify.Status.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": paymentModify.ID}).
		Suffix("RETURNING " + paymentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

// SumPaid - выручка по подтверждённым платежам.
func (r *Repository) SumPaid(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = 'paid'`

	var sum float64
	err := r.querier.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository sum paid error: %w", err)
	}

	return sum, nil
}

func collectPayments(rows pgx.Rows) ([]entities.Payment, error) {
	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		paymentModel, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository scan error: %w", err)
		}
		paymentModels = append(paymentModels, *paymentModel)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository rows error: %w", err)
	}

	return ToDomainList(paymentModels), nil
}

func scanPayment(row pgx.Row) (*PaymentDB, error) {
	var p PaymentDB
	err := row.Scan(
		&p.ID,
		&p.ShipmentID,
		&p.UserID,
		&p.TrackingNumber,
		&p.Method,
		&p.Status,
		&p.Amount,
		&p.StripePaymentID,
		&p.ProofURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

package quote

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/repository"
	quoteService "amerex/internal/service/quote"
)

const quoteColumns = `id, quote_id, name, email, phone, company, origin, destination,
	tier, weight, declared_value,
	opt_signature, opt_insurance, opt_saturday, opt_packaging,
	base_shipping, signature_cost, insurance_cost, saturday_cost, packaging_cost, total,
	status, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, quoteEntity *entities.Quote) (int64, error) {
	query := `INSERT INTO quotes (quote_id, name, email, phone, company, origin, destination,
			tier, weight, declared_value,
			opt_signature, opt_insurance, opt_saturday, opt_packaging,
			base_shipping, signature_cost, insurance_cost, saturday_cost, packaging_cost, total,
			status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		quoteEntity.QuoteID,
		quoteEntity.Name,
		quoteEntity.Email,
		quoteEntity.Phone,
		quoteEntity.Company,
		quoteEntity.Origin,
		quoteEntity.Destination,
		quoteEntity.Tier.String(),
		quoteEntity.Weight,
		quoteEntity.DeclaredValue,
		quoteEntity.Options.Signature,
		quoteEntity.Options.Insurance,
		quoteEntity.Options.Saturday,
		quoteEntity.Options.Packaging,
		quoteEntity.Breakdown.BaseShipping,
		quoteEntity.Breakdown.SignatureCost,
		quoteEntity.Breakdown.InsuranceCost,
		quoteEntity.Breakdown.SaturdayCost,
		quoteEntity.Breakdown.PackagingCost,
		quoteEntity.Breakdown.Total,
		quoteEntity.Status.String(),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, quoteService.ErrQuoteIDTaken
		}
		return 0, fmt.Errorf("unexpected quote repository create error: %w", err)
	}

	return id, nil
}

// CountByDay считает заявки за день, day в формате YYYYMMDD.
func (r *Repository) CountByDay(ctx context.Context, day string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM quotes
		WHERE to_char(created_at, 'YYYYMMDD') = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected quote repository count by day error: %w", err)
	}

	return count, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Quote, error) {
	query := `SELECT ` + quoteColumns + `
		FROM quotes
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
	}
	defer rows.Close()

	quoteModels := make([]QuoteDB, 0, 8)
	for rows.Next() {
		quoteModel, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
		}
		quoteModels = append(quoteModels, *quoteModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
	}

	return ToDomainList(quoteModels), nil
}

func scanQuote(row pgx.Row) (*QuoteDB, error) {
	var q QuoteDB
	err := row.Scan(
		&q.ID,
		&q.QuoteID,
		&q.Name,
		&q.Email,
		&q.Phone,
		&q.Company,
		&q.Origin,
		&q.Destination,
		&q.Tier,
		&q.Weight,
		&q.DeclaredValue,
		&q.Signature,
		&q.Insurance,
		&q.Saturday,
		&q.Packaging,
		&q.BaseShipping,
		&q.SignatureCost,
		&q.InsuranceCost,
		&q.SaturdayCost,
		&q.PackagingCost,
		&q.Total,
		&q.Status,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

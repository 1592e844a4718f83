package address

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/service/account"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const addressColumns = `id, user_id, label, name, phone, address, apt_suite, city, state, zip, country, is_default, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, addressEntity *entities.Address) (int64, error) {
	query := `INSERT INTO addresses (user_id, label, name, phone, address, apt_suite, city, state, zip, country, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		addressEntity.UserID,
		addressEntity.Label,
		addressEntity.Name,
		addressEntity.Phone,
		addressEntity.Address,
		addressEntity.AptSuite,
		addressEntity.City,
		addressEntity.State,
		addressEntity.Zip,
		addressEntity.Country,
		addressEntity.IsDefault,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Address, error) {
	query := `SELECT ` + addressColumns + `
		FROM addresses
		WHERE id = $1`

	addressModel, err := scanAddress(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository getbyid error: %w", err)
	}

	return ToDomain(addressModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Address, error) {
	query := `SELECT ` + addressColumns + `
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository getbyuser error: %w", err)
	}
	defer rows.Close()

	addressModels := make([]AddressDB, 0, 8)
	for rows.Next() {
		addressModel, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository getbyuser error: %w", err)
		}
		addressModels = append(addressModels, *addressModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository getbyuser error: %w", err)
	}

	return ToDomainList(addressModels), nil
}

func (r *Repository) Update(ctx context.Context, addressModify entities.AddressModify) (*entities.Address, error) {
	builder := qb.
		Update("addresses")

	// опциональные поля
	if addressModify.Label != nil {
		builder = builder.Set("label", addressModify.Label)
	}
	if addressModify.Name != nil {
		builder = builder.Set("name", addressModify.Name)
	}
	if addressModify.Phone != nil {
		builder = builder.Set("phone", addressModify.Phone)
	}
	if addressModify.Address != nil {
		builder = builder.Set("address", addressModify.Address)
	}
	if addressModify.AptSuite != nil {
		builder = builder.Set("apt_suite", addressModify.AptSuite)
	}
	if addressModify.City != nil {
		builder = builder.Set("city", addressModify.City)
	}
	if addressModify.State != nil {
		builder = builder.Set("state", addressModify.State)
	}
	if addressModify.Zip != nil {
		builder = builder.Set("zip", addressModify.Zip)
	}
	if addressModify.Country != nil {
		builder = builder.Set("country", addressModify.Country)
	}
	if addressModify.IsDefault != nil {
		builder = builder.Set("is_default", *addressModify.IsDefault)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": addressModify.ID}).
		Suffix("RETURNING " + addressColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository update error: %w", err)
	}

	addressModel, err := scanAddress(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository update error: %w", err)
	}

	return ToDomain(addressModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM addresses WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected address repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return account.ErrAddressNotFound
	}

	return nil
}

// ClearDefault снимает флаг со старого адреса по умолчанию.
func (r *Repository) ClearDefault(ctx context.Context, userID int64) error {
	query := `UPDATE addresses
		SET is_default = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_default = TRUE`

	_, err := r.querier.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("unexpected address repository clear default error: %w", err)
	}

	return nil
}

func scanAddress(row pgx.Row) (*AddressDB, error) {
	var a AddressDB
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Label,
		&a.Name,
		&a.Phone,
		&a.Address,
		&a.AptSuite,
		&a.City,
		&a.State,
		&a.Zip,
		&a.Country,
		&a.IsDefault,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

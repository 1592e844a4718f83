package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/repository"
	"amerex/internal/service/auth"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, email, password_hash, first_name, last_name, phone, company, role, account_type, avatar_url, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userEntity *entities.User) (int64, error) {
	query := `INSERT INTO users (email, password_hash, first_name, last_name, phone, company, role, account_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userEntity.Email,
		userEntity.PasswordHash,
		userEntity.FirstName,
		userEntity.LastName,
		userEntity.Phone,
		userEntity.Company,
		userEntity.Role.String(),
		userEntity.AccountType.String(),
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrAlreadyExists
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опциональные поля
	if userModifyModel.FirstName != nil {
		builder = builder.Set("first_name", userModifyModel.FirstName)
	}
	if userModifyModel.LastName != nil {
		builder = builder.Set("last_name", userModifyModel.LastName)
	}
	if userModifyModel.Phone != nil {
		builder = builder.Set("phone", userModifyModel.Phone)
	}
	if userModifyModel.Company != nil {
		builder = builder.Set("company", userModifyModel.Company)
	}
	if userModifyModel.AccountType != nil {
		builder = builder.Set("account_type", userModifyModel.AccountType)
	}
	if userModifyModel.AvatarURL != nil {
		builder = builder.Set("avatar_url", userModifyModel.AvatarURL)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	userModel, err := r.scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(userModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.UserListFilter) ([]entities.User, error) {
	builder := qb.
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC")

	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": filter.Role.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.FirstName,
			&userModel.LastName,
			&userModel.Phone,
			&userModel.Company,
			&userModel.Role,
			&userModel.AccountType,
			&userModel.AvatarURL,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) scanUser(row pgx.Row) (*UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.FirstName,
		&userModel.LastName,
		&userModel.Phone,
		&userModel.Company,
		&userModel.Role,
		&userModel.AccountType,
		&userModel.AvatarURL,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &userModel, nil
}

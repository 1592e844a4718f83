package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"amerex/internal/entities"
	"amerex/internal/service/coupon"
)

type CouponDB struct {
	ID            int64
	Code          string
	DiscountType  string
	DiscountValue float64
	IsActive      bool
	ExpiresAt     *time.Time
	CreatedAt     time.Time
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	query := `SELECT id, code, discount_type, discount_value, is_active, expires_at, created_at
		FROM coupons
		WHERE code = $1`

	var couponModel CouponDB
	err := r.querier.QueryRow(ctx, query, code).Scan(
		&couponModel.ID,
		&couponModel.Code,
		&couponModel.DiscountType,
		&couponModel.DiscountValue,
		&couponModel.IsActive,
		&couponModel.ExpiresAt,
		&couponModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, fmt.Errorf("unexpected coupon repository getbycode error: %w", err)
	}

	return &entities.Coupon{
		ID:            couponModel.ID,
		Code:          couponModel.Code,
		DiscountType:  entities.DiscountTypeType(couponModel.DiscountType),
		DiscountValue: couponModel.DiscountValue,
		IsActive:      couponModel.IsActive,
		ExpiresAt:     couponModel.ExpiresAt,
		CreatedAt:     couponModel.CreatedAt,
	}, nil
}

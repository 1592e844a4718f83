package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"amerex/internal/entities"
)

type Coupon struct {
	repository Repository
}

func New(repository Repository) *Coupon {
	return &Coupon{
		repository: repository,
	}
}

// GetActiveByCode возвращает купон, пригодный к применению прямо сейчас.
func (s *Coupon) GetActiveByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCouponNotFound
	}

	coupon, err := s.repository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrCouponNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("get coupon by code: %w", err)
	}

	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	if coupon.ExpiresAt != nil && time.Now().After(*coupon.ExpiresAt) {
		return nil, ErrCouponExpired
	}

	return coupon, nil
}

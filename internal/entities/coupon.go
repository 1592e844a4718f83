package entities

import "time"

type Coupon struct {
	ID   int64
	Code string

	DiscountType  DiscountTypeType
	DiscountValue float64

	IsActive  bool
	ExpiresAt *time.Time

	CreatedAt time.Time
}

type DiscountTypeType string

const (
	DiscountPercentage DiscountTypeType = "percentage"
	DiscountFixed      DiscountTypeType = "fixed"
	// DiscountFreeShipping обнуляет всю промежуточную сумму, налог остаётся.
	DiscountFreeShipping DiscountTypeType = "free_shipping"
)

func (t DiscountTypeType) String() string {
	return string(t)
}

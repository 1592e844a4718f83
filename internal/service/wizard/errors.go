package wizard

import "errors"

var (
	ErrDraftNotFound = errors.New("draft not found")
	ErrForeignDraft  = errors.New("draft belongs to another user")
	ErrWrongStep     = errors.New("wrong wizard step")

	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidPackageType    = errors.New("invalid package type")
	ErrInvalidDimensions     = errors.New("invalid dimensions")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidDeclaredValue  = errors.New("invalid declared value")
	ErrShortDescription      = errors.New("description is too short")
	ErrInvalidServiceLevel   = errors.New("invalid service level")
	ErrInvalidPickupDate     = errors.New("invalid pickup date")
	ErrMissingPickupTime     = errors.New("missing pickup time")

	ErrCouponAlreadyApplied = errors.New("coupon already applied")
	ErrCouponNotFound       = errors.New("coupon not found")
)

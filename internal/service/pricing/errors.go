package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrCannotQuote = errors.New("cannot compute quote")

	ErrInvalidWeight        = fmt.Errorf("invalid weight: %w", ErrCannotQuote)
	ErrUnknownTier          = fmt.Errorf("unknown tier: %w", ErrCannotQuote)
	ErrInvalidDeclaredValue = fmt.Errorf("invalid declared value: %w", ErrCannotQuote)
	ErrUnknownServiceLevel  = errors.New("unknown service level")
)

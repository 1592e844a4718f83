package quote

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrTooFrequent           = errors.New("quote was just submitted, wait before retrying")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteIDTaken          = errors.New("quote id already taken")
)

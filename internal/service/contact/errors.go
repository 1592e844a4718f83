package contact

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrMessageLength         = errors.New("message must be from 10 to 1000 characters")
	ErrTooFrequent           = errors.New("message was just submitted, wait before retrying")
)

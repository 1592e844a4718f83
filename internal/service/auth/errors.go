package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password is too short")
	ErrMissingName        = errors.New("missing first or last name")
	ErrAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLockedOut          = errors.New("too many failed attempts")
	ErrUserNotFound       = errors.New("user not found")
)

package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"amerex/internal/entities"
)

const minPasswordLength = 8

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Auth struct {
	users   UserRepository
	tokens  TokenStrategy
	lockout *lockout
}

func New(users UserRepository, tokens TokenStrategy) *Auth {
	return &Auth{
		users:   users,
		tokens:  tokens,
		lockout: newLockout(),
	}
}

func (s *Auth) Register(ctx context.Context, email, password, firstName, lastName string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrMissingName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Role:         entities.RoleUser,
		AccountType:  entities.AccountPersonal,
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	user.PasswordHash = ""

	return user, nil
}

func (s *Auth) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.lockout.isLocked(email) {
		return "", nil, ErrLockedOut
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.lockout.recordFailure(email)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.lockout.recordFailure(email)
		return "", nil, ErrInvalidCredentials
	}

	s.lockout.reset(email)

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	user.PasswordHash = ""

	return token, user, nil
}

// Authenticate проверяет bearer-токен, используется middleware.
func (s *Auth) Authenticate(ctx context.Context, token string) (int64, error) {
	userID, err := s.tokens.ParseToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}
	return userID, nil
}

// IsAdmin проверяет роль для админских маршрутов.
func (s *Auth) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get user: %w", err)
	}
	return user.Role.IsAdmin(), nil
}

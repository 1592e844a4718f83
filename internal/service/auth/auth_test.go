package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"amerex/internal/entities"
	"amerex/internal/service/auth"
)

type mock struct {
	*MockUserRepository
	*MockTokenStrategy
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockUserRepository: NewMockUserRepository(ctrl),
		MockTokenStrategy:  NewMockTokenStrategy(ctrl),
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		email       string
		password    string
		firstName   string
		lastName    string
		mockSetup   func(m *mock)
		expectedErr error
	}{
		{
			name:      "Успешная регистрация с ролью user",
			email:     "John@Example.com",
			password:  "correct-horse",
			firstName: "John",
			lastName:  "Wick",
			mockSetup: func(m *mock) {
				m.MockUserRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *entities.User) (int64, error) {
						assert.Equal(t, "john@example.com", user.Email)
						assert.Equal(t, entities.RoleUser, user.Role)
						assert.Equal(t, entities.AccountPersonal, user.AccountType)
						assert.NotEmpty(t, user.PasswordHash)
						return 1, nil
					})
			},
		},
		{
			name:        "Отклонение регистрации с невалидным email",
			email:       "not-an-email",
			password:    "correct-horse",
			firstName:   "John",
			lastName:    "Wick",
			expectedErr: auth.ErrInvalidEmail,
		},
		{
			name:        "Отклонение регистрации с коротким паролем",
			email:       "john@example.com",
			password:    "short",
			firstName:   "John",
			lastName:    "Wick",
			expectedErr: auth.ErrWeakPassword,
		},
		{
			name:        "Отклонение регистрации без имени",
			email:       "john@example.com",
			password:    "correct-horse",
			firstName:   "  ",
			lastName:    "Wick",
			expectedErr: auth.ErrMissingName,
		},
		{
			name:      "Повторная регистрация занятого email",
			email:     "john@example.com",
			password:  "correct-horse",
			firstName: "John",
			lastName:  "Wick",
			mockSetup: func(m *mock) {
				m.MockUserRepository.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), auth.ErrAlreadyExists)
			},
			expectedErr: auth.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := newMock(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			svc := auth.New(m.MockUserRepository, m.MockTokenStrategy)
			user, err := svc.Register(context.Background(), tt.email, tt.password, tt.firstName, tt.lastName)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("Успешный вход выдаёт токен", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		m.MockUserRepository.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(&entities.User{
				ID:           42,
				Email:        "john@example.com",
				PasswordHash: hashOf(t, "correct-horse"),
			}, nil)
		m.MockTokenStrategy.EXPECT().
			IssueToken(int64(42)).
			Return("issued-token", nil)

		token, user, err := auth.New(m.MockUserRepository, m.MockTokenStrategy).
			Login(context.Background(), "john@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)
		assert.Equal(t, int64(42), user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Неверный пароль отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		m.MockUserRepository.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(&entities.User{
				ID:           42,
				PasswordHash: hashOf(t, "correct-horse"),
			}, nil)

		_, _, err := auth.New(m.MockUserRepository, m.MockTokenStrategy).
			Login(context.Background(), "john@example.com", "wrong")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Неизвестный email отклоняется без утечки причины", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		m.MockUserRepository.EXPECT().
			GetByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, auth.ErrUserNotFound)

		_, _, err := auth.New(m.MockUserRepository, m.MockTokenStrategy).
			Login(context.Background(), "ghost@example.com", "whatever")

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("Пять неудач подряд блокируют вход", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)

		hash := hashOf(t, "correct-horse")
		m.MockUserRepository.EXPECT().
			GetByEmail(gomock.Any(), "john@example.com").
			Return(&entities.User{ID: 42, PasswordHash: hash}, nil).
			Times(5)

		svc := auth.New(m.MockUserRepository, m.MockTokenStrategy)
		for i := 0; i < 5; i++ {
			_, _, err := svc.Login(context.Background(), "john@example.com", fmt.Sprintf("wrong-%d", i))
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		}

		// шестая попытка отклоняется даже с верным паролем
		_, _, err := svc.Login(context.Background(), "john@example.com", "correct-horse")
		assert.ErrorIs(t, err, auth.ErrLockedOut)
	})
}

func TestAuth_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     entities.UserRoleType
		expected bool
	}{
		{name: "Роль admin получает доступ", role: entities.RoleAdmin, expected: true},
		{name: "Легаси роль administrator получает доступ", role: entities.RoleAdministrator, expected: true},
		{name: "Обычный пользователь не получает доступ", role: entities.RoleUser, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := newMock(ctrl)

			m.MockUserRepository.EXPECT().
				GetByID(gomock.Any(), int64(42)).
				Return(&entities.User{ID: 42, Role: tt.role}, nil)

			got, err := auth.New(m.MockUserRepository, m.MockTokenStrategy).IsAdmin(context.Background(), 42)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

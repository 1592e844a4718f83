package tokens_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amerex/internal/pkg/tokens"
)

func TestHMACStrategy(t *testing.T) {
	t.Parallel()

	t.Run("Выпущенный токен парсится обратно", func(t *testing.T) {
		t.Parallel()

		strategy := tokens.NewHMACStrategy("secret", time.Hour)

		token, err := strategy.IssueToken(42)
		require.NoError(t, err)

		userID, err := strategy.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("Токен с чужим секретом отклоняется", func(t *testing.T) {
		t.Parallel()

		issuer := tokens.NewHMACStrategy("secret-a", time.Hour)
		verifier := tokens.NewHMACStrategy("secret-b", time.Hour)

		token, err := issuer.IssueToken(42)
		require.NoError(t, err)

		_, err = verifier.ParseToken(token)
		assert.ErrorIs(t, err, tokens.ErrInvalidToken)
	})

	t.Run("Просроченный токен отклоняется", func(t *testing.T) {
		t.Parallel()

		strategy := tokens.NewHMACStrategy("secret", -time.Minute)

		token, err := strategy.IssueToken(42)
		require.NoError(t, err)

		_, err = strategy.ParseToken(token)
		assert.ErrorIs(t, err, tokens.ErrTokenExpired)
	})

	t.Run("Мусор вместо токена отклоняется", func(t *testing.T) {
		t.Parallel()

		strategy := tokens.NewHMACStrategy("secret", time.Hour)

		_, err := strategy.ParseToken("not-a-token")
		assert.ErrorIs(t, err, tokens.ErrInvalidToken)
	})
}

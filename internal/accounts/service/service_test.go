package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/internal/accounts/store"
	"github.com/solwayhq/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/solwayhq/accounts/pkg/cryptox"
	"github.com/solwayhq/accounts/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()

	tokens, err := NewTokenService(testSecret, "accounts", []string{"accounts-web"}, 0)
	require.NoError(t, err)
	return tokens
}

func seedUser(t *testing.T, st store.Store, name, email, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	created, err := st.Users().CreateUser(context.Background(), domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return created
}

func TestNewTokenService(t *testing.T) {
	t.Run("defaults the ttl", func(t *testing.T) {
		tokens := newTestTokens(t)
		require.Equal(t, jwtx.DefaultSessionTTL, tokens.TTL())
	})

	t.Run("rejects a weak secret", func(t *testing.T) {
		_, err := NewTokenService([]byte("short"), "accounts", nil, 0)
		require.Error(t, err)
	})
}

func TestTokenServiceIssueValidate(t *testing.T) {
	tokens := newTestTokens(t)

	user := domain.User{ID: "user-1", Name: "Ana", Email: "ana@x.com"}

	token, err := tokens.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Name, claims.Name)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, "accounts", claims.Issuer)

	t.Run("rejects a token from a different secret", func(t *testing.T) {
		other, err := NewTokenService([]byte("ffffffffffffffffffffffffffffffff"), "accounts", []string{"accounts-web"}, 0)
		require.NoError(t, err)

		foreign, err := other.Issue(user)
		require.NoError(t, err)

		_, err = tokens.Validate(foreign)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := tokens.Validate("garbage")
		require.Error(t, err)
	})
}

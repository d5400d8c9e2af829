package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	t.Run("empty store", func(t *testing.T) {
		list, err := users.ListUsers(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	first := seedUser(t, st, "Ana", "ana@x.com", "secret123")
	second := seedUser(t, st, "Bo", "bo@x.com", "secret123")

	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)

	t.Run("never exposes password material", func(t *testing.T) {
		raw, err := json.Marshal(list)
		require.NoError(t, err)
		require.NotContains(t, string(raw), "password")
		require.NotContains(t, string(raw), first.PasswordHash)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	seeded := seedUser(t, st, "Ana", "ana@x.com", "secret123")

	t.Run("wrong current password", func(t *testing.T) {
		err := users.ChangePassword(ctx, seeded.ID, "wrong", "brand-new-1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short new password", func(t *testing.T) {
		err := users.ChangePassword(ctx, seeded.ID, "secret123", "short")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := users.ChangePassword(ctx, "missing", "secret123", "brand-new-1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, users.ChangePassword(ctx, seeded.ID, "secret123", "brand-new-1"))

		logins := &LoginService{Store: st, Tokens: newTestTokens(t)}

		_, err := logins.Login(ctx, "ana@x.com", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = logins.Login(ctx, "ana@x.com", "brand-new-1")
		require.NoError(t, err)
	})
}

package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/internal/accounts/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCreateUserAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Users().CreateUser(ctx, domain.User{
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	require.NotEmpty(t, created.ID, "store assigns the id")
	require.False(t, created.CreatedAt.IsZero(), "store assigns created_at")
	require.False(t, created.UpdatedAt.IsZero())
	require.Equal(t, "ana@x.com", created.Email)

	fetched, err := s.Users().GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, domain.User{Name: "Other", Email: "ana@x.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	t.Run("case-insensitive", func(t *testing.T) {
		_, err := s.Users().CreateUser(ctx, domain.User{Name: "Loud", Email: "ANA@X.COM", PasswordHash: "h3"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	found, err := s.Users().GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)

	t.Run("case-insensitive lookup", func(t *testing.T) {
		found, err := s.Users().GetUserByEmail(ctx, "Ana@X.Com")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Users().GetUserByEmail(ctx, "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestExistsByEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	exists, err := s.Users().ExistsByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = s.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	exists, err = s.Users().ExistsByEmail(ctx, "ANA@x.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestListUsersOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.Users().CreateUser(ctx, domain.User{Name: "First", Email: "first@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	second, err := s.Users().CreateUser(ctx, domain.User{Name: "Second", Email: "second@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, first.ID, users[0].ID)
	require.Equal(t, second.ID, users[1].ID)
}

func TestUpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "old"})
	require.NoError(t, err)

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, created.ID, "new"))

	fetched, err := s.Users().GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "new", fetched.PasswordHash)
	require.False(t, fetched.UpdatedAt.Before(created.UpdatedAt))

	t.Run("unknown user", func(t *testing.T) {
		err := s.Users().UpdatePasswordHash(ctx, "missing", "new")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
		require.NoError(t, err)
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	exists, err := s.Users().ExistsByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.False(t, exists, "insert must be rolled back")
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
		return err
	})
	require.NoError(t, err)

	exists, err := s.Users().ExistsByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.True(t, exists)
}

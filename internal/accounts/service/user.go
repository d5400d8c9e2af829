package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/internal/accounts/store"
	"github.com/solwayhq/accounts/pkg/cryptox"
)

// UserService covers read and maintenance operations on existing accounts.
type UserService struct {
	Store store.Store
}

// ListUsers returns the public view of every registered user.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// ChangePassword replaces a user's password hash after re-verifying the
// current password. A wrong current password reports the same error as a
// failed login.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return err
	}

	return s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash)
}

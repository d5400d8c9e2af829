package service

import (
	"context"
	"errors"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/internal/accounts/store"
	"github.com/solwayhq/accounts/pkg/cryptox"
	"github.com/solwayhq/accounts/pkg/slogx"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// The two cases are externally identical so the login endpoint can't be used
// to enumerate registered emails.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

// LoginService authenticates a login attempt: look up the user, verify the
// password against the stored hash, issue a session token. A pure
// read-then-decide operation with no writes.
type LoginService struct {
	Store  store.Store
	Tokens *TokenService
}

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token string
	User  domain.PublicUser
}

func (s *LoginService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login rejected", "user_id", user.ID)
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, User: user.Public()}, nil
}

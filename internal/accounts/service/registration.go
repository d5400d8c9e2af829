package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/internal/accounts/store"
	"github.com/solwayhq/accounts/pkg/cryptox"
)

var (
	// ErrEmailTaken reports a registration conflict on the unique email.
	ErrEmailTaken = errors.New("service: email already registered")

	// ErrInvalidInput reports a registration payload that fails validation.
	// Wrapped instances carry the reason in their message.
	ErrInvalidInput = errors.New("invalid input")
)

// MinPasswordLength is the minimum accepted password size on registration
// and password change.
const MinPasswordLength = 8

// RegistrationService creates new user records with hashed credentials,
// enforcing email uniqueness.
type RegistrationService struct {
	Store store.Store

	// hashOverride replaces the password hasher in tests. Nil means
	// cryptox.HashPassword.
	hashOverride func(string) (string, error)
}

func (s *RegistrationService) Register(ctx context.Context, name, email, password string) (domain.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateRegistration(name, email, password); err != nil {
		return domain.PublicUser{}, err
	}

	// Fast-path duplicate check before the expensive hashing step. The
	// unique index on email remains the actual guarantee under concurrency.
	taken, err := s.Store.Users().ExistsByEmail(ctx, email)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if taken {
		return domain.PublicUser{}, ErrEmailTaken
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return domain.PublicUser{}, err
	}

	var created domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Users().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}

		created, err = tx.Users().CreateUser(ctx, domain.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.PublicUser{}, ErrEmailTaken
		}
		return domain.PublicUser{}, err
	}

	// The store assigned id and timestamps; echo its record, not ours.
	return created.Public(), nil
}

func (s *RegistrationService) hashPassword(password string) (string, error) {
	if s.hashOverride != nil {
		return s.hashOverride(password)
	}
	return cryptox.HashPassword(password)
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	at := strings.Count(email, "@")
	if at != 1 {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}

	local, domainPart, _ := strings.Cut(email, "@")
	if local == "" || domainPart == "" || strings.ContainsAny(email, " \t") {
		return fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}

	return nil
}

package service

import (
	"time"

	"github.com/solwayhq/accounts/internal/accounts/domain"
	"github.com/solwayhq/accounts/pkg/jwtx"
)

// TokenService issues and validates self-contained session tokens. Tokens
// are stateless: validation is pure computation and never touches storage,
// so there is nothing to revoke server-side before expiry.
type TokenService struct {
	signer   jwtx.Signer
	verifier jwtx.Verifier

	issuer   string
	audience []string
	ttl      time.Duration
}

// NewTokenService wires an HS256 signer/verifier pair around a shared
// secret. A secret that cannot build a signer is a configuration error and
// should abort startup.
func NewTokenService(secret []byte, issuer string, audience []string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	return &TokenService{
		signer:   signer,
		verifier: jwtx.NewVerifierHS256(secret, issuer, audience),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

// Issue signs a session token carrying the user's identity claims.
func (s *TokenService) Issue(u domain.User) (string, error) {
	claims := jwtx.NewSessionClaims(
		u.ID, u.Name, u.Email,
		s.issuer, s.audience,
		s.ttl, time.Now().UTC(),
	)
	return s.signer.Sign(claims)
}

// Validate verifies the signature, issuer, audience and expiry of a token.
// Any failure yields an error; there is no partial trust.
func (s *TokenService) Validate(token string) (jwtx.Claims, error) {
	return s.verifier.Verify(token)
}

// Verifier exposes the underlying verifier for the HTTP authn middleware.
func (s *TokenService) Verifier() jwtx.Verifier { return s.verifier }

// TTL is the validity window stamped into issued tokens. The session cookie
// expiry mirrors it.
func (s *TokenService) TTL() time.Duration { return s.ttl }

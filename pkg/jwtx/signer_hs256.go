package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum HS256 secret size we accept. Anything
// shorter than the hash output weakens the HMAC.
const MinSecretLength = 32

type hs256Signer struct {
	secret []byte
}

func newHS256Signer(secret []byte) (*hs256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf(
			"jwtx: HS256 secret must be at least %d bytes, got %d",
			MinSecretLength, len(secret),
		)
	}
	return &hs256Signer{secret: secret}, nil
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(claims Claims) (string, error) {
	if claims.Subject == "" {
		return "", errors.New("jwtx: refusing to sign claims without a subject")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign token: %w", err)
	}
	return signed, nil
}

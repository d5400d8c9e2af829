package jwtx

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HS256 signer from a shared secret. Rotating the
// secret invalidates every outstanding token, which is the only revocation
// mechanism this scheme has.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}

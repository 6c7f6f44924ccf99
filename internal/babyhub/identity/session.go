package identity

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionVerifier validates provider-issued session JWTs signed with
// EdDSA (Ed25519).
type SessionVerifier struct {
	pub    ed25519.PublicKey
	issuer string
}

// NewSessionVerifier creates a verifier for the given issuer using the
// provider's Ed25519 public key.
func NewSessionVerifier(pub ed25519.PublicKey, issuer string) *SessionVerifier {
	return &SessionVerifier{pub: pub, issuer: issuer}
}

// NewSessionVerifierFromFile loads a raw 32-byte Ed25519 public key from
// disk and builds a verifier around it.
func NewSessionVerifierFromFile(path, issuer string) (*SessionVerifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("identity: read public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("identity: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return NewSessionVerifier(ed25519.PublicKey(raw), issuer), nil
}

// VerifySession checks the token signature, issuer and expiry, and returns
// the subject. The subject must be a UUID, matching the provider's user id
// format.
func (v *SessionVerifier) VerifySession(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return v.pub, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidSession
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidSession)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: subject is not a user id", ErrInvalidSession)
	}

	return claims.Subject, nil
}

// IsInvalidSession reports whether err came from session verification.
func IsInvalidSession(err error) bool {
	return errors.Is(err, ErrInvalidSession)
}

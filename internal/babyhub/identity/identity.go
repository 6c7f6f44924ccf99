// Package identity integrates with the external identity provider. The
// provider owns credentials and email verification; this service only
// exchanges authorization codes for sessions and verifies session tokens.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrExchangeFailed means the provider rejected the authorization code.
	ErrExchangeFailed = errors.New("identity: authorization code exchange failed")

	// ErrInvalidSession means the session token failed verification.
	ErrInvalidSession = errors.New("identity: invalid session token")
)

// Session is the result of a successful authorization code exchange.
type Session struct {
	// UserID is the provider's stable user identifier (a UUID string).
	UserID string

	// Email is the verified address the user signed up with.
	Email string

	// AccessToken is the bearer token for subsequent requests.
	AccessToken string

	// ExpiresAt is when the access token stops being valid.
	ExpiresAt time.Time
}

// Provider is the identity provider boundary.
type Provider interface {
	// ExchangeAuthorizationCode trades a one-time authorization code for a
	// session. Codes are single-use; a replayed code fails with
	// ErrExchangeFailed.
	ExchangeAuthorizationCode(ctx context.Context, code string) (Session, error)

	// VerifySession validates a bearer session token and returns the user
	// id it was issued to.
	VerifySession(token string) (userID string, err error)
}

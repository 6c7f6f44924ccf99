package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the identity provider's token endpoint and verifies the
// sessions it issues. It implements Provider.
type Client struct {
	tokenURL string
	http     *http.Client
	verifier *SessionVerifier
	now      func() time.Time
}

// NewClient builds a provider client. The verifier must be configured with
// the same issuer the token endpoint signs for.
func NewClient(tokenURL string, verifier *SessionVerifier) *Client {
	return &Client{
		tokenURL: tokenURL,
		http:     &http.Client{Timeout: 10 * time.Second},
		verifier: verifier,
		now:      time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// ExchangeAuthorizationCode posts the one-time code to the token endpoint.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code string) (Session, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("identity: build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("identity: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Session{}, fmt.Errorf("%w: status %d", ErrExchangeFailed, resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Session{}, fmt.Errorf("%w: decode response: %w", ErrExchangeFailed, err)
	}
	if body.AccessToken == "" || body.UserID == "" {
		return Session{}, fmt.Errorf("%w: incomplete response", ErrExchangeFailed)
	}

	return Session{
		UserID:      body.UserID,
		Email:       body.Email,
		AccessToken: body.AccessToken,
		ExpiresAt:   c.now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}

// VerifySession delegates to the configured session verifier.
func (c *Client) VerifySession(token string) (string, error) {
	return c.verifier.VerifySession(token)
}

package hubsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// VerifyInvite checks a code without consuming it, returning the role it
// would grant. Unauthenticated; this backs the pre-signup landing page.
func (c *Client) VerifyInvite(ctx context.Context, code string) (*VerifyInviteResponse, error) {
	var out VerifyInviteResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/join/"+url.PathEscape(code), nil, "", http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap seeds the first invite codes on a fresh deployment. The token
// must match the server's configured bootstrap token.
func (c *Client) Bootstrap(ctx context.Context, token string) (*BootstrapResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/v1/bootstrap"), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Bootstrap-Token", token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, parseErrorResponse(resp, raw)
	}

	var out BootstrapResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// ExchangeCallback completes the identity provider redirect: it exchanges
// the one-time auth code for a session and, when inviteCode is non-empty,
// redeems it in the same round trip.
func (c *Client) ExchangeCallback(ctx context.Context, authCode, inviteCode string) (*CallbackResponse, error) {
	q := url.Values{}
	q.Set("code", authCode)
	if inviteCode != "" {
		q.Set("invite", inviteCode)
	}

	var out CallbackResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/auth/callback?"+q.Encode(), nil, "", http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RedeemInvite consumes a code for the authenticated profile and returns
// the granted role.
func (s *Session) RedeemInvite(ctx context.Context, code, displayName string) (*RedeemInviteResponse, error) {
	req := RedeemInviteRequest{Code: code, DisplayName: displayName}

	var out RedeemInviteResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/join/redeem", req, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated profile.
func (s *Session) Me(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/me", nil, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

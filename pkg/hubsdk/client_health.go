package hubsdk

import (
	"context"
	"net/http"
)

// GetLiveness reports whether the process is up.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness reports whether the service can reach its database.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, "", http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

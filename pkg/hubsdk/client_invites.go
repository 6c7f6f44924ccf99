package hubsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Admin operations. The server enforces the admin role on every one of
// these; a non-admin session gets an APIError with code "forbidden".

// CreateInvite mints a new invite code.
func (s *Session) CreateInvite(ctx context.Context, req CreateInviteRequest) (*InviteResponse, error) {
	var out InviteResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/admin/invites", req, s.accessToken, http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites returns every invite code with redemption status.
func (s *Session) ListInvites(ctx context.Context) (*ListInvitesResponse, error) {
	var out ListInvitesResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/admin/invites", nil, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvite deletes an unredeemed invite code. Redeemed codes cannot be
// revoked; the server returns "invite_redeemed".
func (s *Session) RevokeInvite(ctx context.Context, inviteID string) error {
	return s.client.doJSON(ctx, http.MethodDelete,
		"/v1/admin/invites/"+url.PathEscape(inviteID), nil, s.accessToken, http.StatusNoContent, nil)
}

// ListProfiles returns every profile for the admin user panel.
func (s *Session) ListProfiles(ctx context.Context) (*ListProfilesResponse, error) {
	var out ListProfilesResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/admin/users", nil, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfileRole sets a profile's role directly, bypassing invites.
func (s *Session) UpdateProfileRole(ctx context.Context, profileID, role string) error {
	req := UpdateRoleRequest{Role: role}
	return s.client.doJSON(ctx, http.MethodPatch,
		"/v1/admin/users/"+url.PathEscape(profileID), req, s.accessToken, http.StatusNoContent, nil)
}

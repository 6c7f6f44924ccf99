package http

import (
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/identity"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// CallbackDeps bundles the services the callback flow composes.
type CallbackDeps struct {
	Provider identity.Provider
	Profiles *service.ProfileService
	Invites  *service.InviteService
}

type CallbackHandler struct {
	Deps *CallbackDeps
}

// ServeHTTP godoc
//
//	@Summary		Identity Provider Callback
//	@Description	Completes the signup/login redirect: exchanges the one-time authorization code for a session, waits for the profile row to exist (creating it with the default role if the provider is slow), and redeems a pending invite code when one is supplied.
//	@Tags			Join
//	@Produce		json
//	@Param			code	query		string					true	"One-time authorization code"
//	@Param			invite	query		string					false	"Invite code to redeem after login"
//	@Success		200		{object}	hubsdk.CallbackResponse	"access_token, expires_at, profile, granted_role"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/callback [get].
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	authCode := r.URL.Query().Get("code")
	if authCode == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
			"code query parameter is required").WriteError(w)
		return
	}

	// 1. Exchange the one-time code for a session. A replayed code fails
	// here; nothing below runs twice for the same code.
	session, err := h.Deps.Provider.ExchangeAuthorizationCode(ctx, authCode)
	if err != nil {
		if errors.Is(err, identity.ErrExchangeFailed) {
			hubsdk.NewAPIError(http.StatusUnauthorized, hubsdk.ErrorCodeUnauthorized,
				"authorization code exchange failed").WriteError(w)
			return
		}
		log.Error("code exchange failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	// 2. Make sure the profile row exists before anything touches it.
	profile, err := h.Deps.Profiles.EnsureProfile(ctx, session.UserID, displayNameFromEmail(session.Email))
	if err != nil {
		log.Error("profile creation failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	resp := hubsdk.CallbackResponse{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt.Unix(),
		Profile:     toProfileResponse(profile),
	}

	// 3. Redeem a pending invite code if the signup flow carried one. A
	// bad code does not fail the login; the user lands with their current
	// role and can retry redemption later.
	if inviteCode := r.URL.Query().Get("invite"); inviteCode != "" {
		role, err := h.Deps.Invites.Redeem(ctx, inviteCode, profile.ID, profile.DisplayName)
		if err == nil {
			resp.GrantedRole = role.String()
			resp.Profile.Role = role.String()
		} else {
			log.Warn("callback invite redemption skipped", "err", err)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// displayNameFromEmail derives a default display name from the local part
// of the email address. The user can overwrite it when redeeming a code.
func displayNameFromEmail(email string) string {
	for i, c := range email {
		if c == '@' {
			return email[:i]
		}
	}
	return email
}

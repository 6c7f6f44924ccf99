package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

type JoinVerifyHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Verify Invite Code
//	@Description	Check an invite code without consuming it. Returns the role the code would grant on redemption. Unknown, expired, and revoked codes are indistinguishable in the response.
//	@Tags			Join
//	@Produce		json
//	@Param			code	path		string							true	"Six character invite code"
//	@Success		200		{object}	hubsdk.VerifyInviteResponse		"code, role"
//	@Failure		404		{object}	hubsdk.ErrorResponse			"error, error_description"
//	@Router			/v1/join/{code} [get].
func (h *JoinVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.PathValue("code")
	role, err := h.InviteService.Verify(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrInviteInvalid) {
			hubsdk.ErrInviteInvalid.WriteError(w)
			return
		}
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.VerifyInviteResponse{
		Code: service.NormalizeCode(code),
		Role: role.String(),
	})
}

type JoinRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invite Code
//	@Description	Consume an invite code for the authenticated profile, granting the code's role. Each code can be redeemed at most once; concurrent attempts settle to a single winner and everyone else sees the same not-found response as for an unknown code.
//	@Tags			Join
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.RedeemInviteRequest	true	"Redeem request"
//	@Success		200		{object}	hubsdk.RedeemInviteResponse	"role"
//	@Failure		400		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/join/redeem [post].
func (h *JoinRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Code == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
			"code is required").WriteError(w)
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		hubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	role, err := h.InviteService.Redeem(ctx, req.Code, userID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteInvalid):
			hubsdk.ErrInviteInvalid.WriteError(w)
		case errors.Is(err, service.ErrUnauthenticated):
			hubsdk.ErrUnauthorized.WriteError(w)
		default:
			log.Error("redeem failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.RedeemInviteResponse{Role: role.String()})
}

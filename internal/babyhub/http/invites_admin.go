package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// defaultInviteTTL is used when the create request omits expires_at.
const defaultInviteTTL = 7 * 24 * time.Hour

type InviteCreateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Invite Code
//	@Description	Mint a new invite code bound to a role. Admin only. The code string is returned exactly once here and again in the listing until redeemed.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.CreateInviteRequest	true	"Invite request"
//	@Success		201		{object}	hubsdk.InviteResponse		"id, code, role, expires_at"
//	@Failure		400		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [post].
func (h *InviteCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Role == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
			"role is required").WriteError(w)
		return
	}

	admin, ok := profileFromContext(ctx)
	if !ok {
		hubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	expiresAt := time.Now().Add(defaultInviteTTL)
	if req.ExpiresAt != 0 {
		expiresAt = time.Unix(req.ExpiresAt, 0)
	}

	invite, err := h.InviteService.Issue(ctx, domain.Role(req.Role), expiresAt, admin.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				"role must be one of admin, family, friend").WriteError(w)
		case errors.Is(err, service.ErrInvalidExpiry):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				"expires_at must be in the future").WriteError(w)
		case errors.Is(err, service.ErrIssuanceFailed):
			log.Error("issuance exhausted retries")
			hubsdk.ErrServerError.WriteError(w)
		default:
			log.Error("issuance failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInviteResponse(domain.InviteCodeListing{InviteCode: invite}))
}

type InviteListHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		List Invite Codes
//	@Description	List every invite code with redemption status and redeemer display names. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	hubsdk.ListInvitesResponse	"invites"
//	@Failure		401	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	listings, err := h.InviteService.List(ctx)
	if err != nil {
		log.Error("invite listing failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	out := hubsdk.ListInvitesResponse{Invites: make([]hubsdk.InviteResponse, 0, len(listings))}
	for _, l := range listings {
		out.Invites = append(out.Invites, toInviteResponse(l))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

type InviteRevokeHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invite Code
//	@Description	Delete an unredeemed invite code. Redeemed codes are the permanent record of who joined how and cannot be revoked.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"Invite id"
//	@Success		204	"revoked"
//	@Failure		401	{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/invites/{id} [delete].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.InviteService.Revoke(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteInvalid):
			hubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrInviteRedeemed):
			hubsdk.ErrInviteRedeemed.WriteError(w)
		default:
			log.Error("revoke failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toInviteResponse(l domain.InviteCodeListing) hubsdk.InviteResponse {
	return hubsdk.InviteResponse{
		ID:         l.ID,
		Code:       l.Code,
		Role:       l.Role.String(),
		ExpiresAt:  l.ExpiresAt.Unix(),
		UsedBy:     l.UsedBy,
		UsedByName: l.UsedByName,
		CreatedBy:  l.CreatedBy,
		CreatedAt:  l.CreatedAt.Unix(),
	}
}

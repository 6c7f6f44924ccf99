package http

import (
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Invite Codes
//	@Description	Seed the first invite codes on a fresh deployment, one per role, expiring in thirty days. Guarded by the deployment's bootstrap token and refused once any code exists. The returned codes must be delivered out of band.
//	@Tags			Bootstrap
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string					true	"Bootstrap token"
//	@Success		201					{object}	hubsdk.BootstrapResponse	"invites"
//	@Failure		401					{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		404					{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		409					{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.Header.Get("X-Bootstrap-Token")

	codes, err := h.BootstrapService.Seed(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapDisabled):
			// Indistinguishable from a route that doesn't exist.
			hubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrBootstrapDenied):
			hubsdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrAlreadySeeded):
			hubsdk.NewAPIError(http.StatusConflict, hubsdk.ErrorCodeConflict,
				"invite codes already exist").WriteError(w)
		default:
			log.Error("bootstrap failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	out := hubsdk.BootstrapResponse{Invites: make([]hubsdk.InviteResponse, 0, len(codes))}
	for _, code := range codes {
		out.Invites = append(out.Invites, toInviteResponse(domain.InviteCodeListing{InviteCode: code}))
	}

	httpx.WriteJSON(w, http.StatusCreated, out)
}

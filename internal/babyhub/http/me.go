package http

import (
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
)

type MeHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Current Profile
//	@Description	Returns the authenticated caller's profile including their role.
//	@Tags			Profiles
//	@Produce		json
//	@Success		200	{object}	hubsdk.ProfileResponse	"id, role, display_name"
//	@Failure		401	{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		hubsdk.ErrUnauthorized.WriteError(w)
		return
	}

	profile, err := h.ProfileService.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			// Valid session but no profile yet; the callback flow has not
			// completed. Treat as unauthenticated.
			hubsdk.ErrUnauthorized.WriteError(w)
			return
		}
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p domain.Profile) hubsdk.ProfileResponse {
	return hubsdk.ProfileResponse{
		ID:          p.ID,
		Role:        p.Role.String(),
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt.Unix(),
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

type UserListHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		List Profiles
//	@Description	List every profile with their current role. Admin only.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	hubsdk.ListProfilesResponse	"profiles"
//	@Failure		401	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [get].
func (h *UserListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profiles, err := h.ProfileService.List(ctx)
	if err != nil {
		log.Error("profile listing failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	out := hubsdk.ListProfilesResponse{Profiles: make([]hubsdk.ProfileResponse, 0, len(profiles))}
	for _, p := range profiles {
		out.Profiles = append(out.Profiles, toProfileResponse(p))
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

type UserRoleHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Update Profile Role
//	@Description	Set a profile's role directly, bypassing invite codes. Admin only; used to correct mis-assigned roles.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"Profile id"
//	@Param			request	body	hubsdk.UpdateRoleRequest	true	"New role"
//	@Success		204		"updated"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id} [patch].
func (h *UserRoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hubsdk.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.ProfileService.UpdateRole(ctx, r.PathValue("id"), domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				"role must be one of admin, family, friend").WriteError(w)
		case errors.Is(err, service.ErrProfileNotFound):
			hubsdk.ErrNotFound.WriteError(w)
		default:
			log.Error("role update failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// requireProfile runs the server-side role check inside a handler and
// writes the error response itself on failure.
func requireProfile(
	ctx context.Context,
	w http.ResponseWriter,
	access *service.AccessService,
	allowed ...domain.Role,
) (domain.Profile, bool) {
	profile, err := access.RequireRole(ctx, httpx.UserIDFromContext(ctx), allowed...)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			hubsdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrForbidden):
			hubsdk.ErrForbidden.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("role check failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return domain.Profile{}, false
	}
	return profile, true
}

type PhotoListHandler struct {
	AccessService *service.AccessService
	PhotoService  *service.PhotoService
}

// ServeHTTP godoc
//
//	@Summary		List Photos
//	@Description	List gallery metadata, newest first. Visible to every role.
//	@Tags			Photos
//	@Produce		json
//	@Success		200	{object}	hubsdk.ListPhotosResponse	"photos"
//	@Failure		401	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/photos [get].
func (h *PhotoListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, ok := requireProfile(ctx, w, h.AccessService, domain.Roles()...); !ok {
		return
	}

	photos, err := h.PhotoService.List(ctx)
	if err != nil {
		log.Error("photo listing failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	out := hubsdk.ListPhotosResponse{Photos: make([]hubsdk.PhotoResponse, 0, len(photos))}
	for _, p := range photos {
		out.Photos = append(out.Photos, toPhotoResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type PhotoAddHandler struct {
	AccessService *service.AccessService
	PhotoService  *service.PhotoService
}

// ServeHTTP godoc
//
//	@Summary		Add Photo
//	@Description	Record a new photo. The image must already live on external storage; only metadata passes through here. Restricted to admin and family.
//	@Tags			Photos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.AddPhotoRequest	true	"Photo metadata"
//	@Success		201		{object}	hubsdk.PhotoResponse	"id, url, title, tags"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/photos [post].
func (h *PhotoAddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profile, ok := requireProfile(ctx, w, h.AccessService, domain.RoleAdmin, domain.RoleFamily)
	if !ok {
		return
	}

	var req hubsdk.AddPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	photo, err := h.PhotoService.Add(ctx, profile.ID, req.URL, req.Title, req.Tags, req.Width, req.Height)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhoto), errors.Is(err, service.ErrTooManyTags):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				err.Error()).WriteError(w)
		default:
			log.Error("photo add failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPhotoResponse(photo))
}

type PhotoTagsHandler struct {
	AccessService *service.AccessService
	PhotoService  *service.PhotoService
}

// ServeHTTP godoc
//
//	@Summary		Update Photo Tags
//	@Description	Replace a photo's tag list. Only the uploader or an admin may edit.
//	@Tags			Photos
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Photo id"
//	@Param			request	body	hubsdk.UpdatePhotoTagsRequest	true	"New tag list"
//	@Success		204		"updated"
//	@Failure		400		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/photos/{id}/tags [patch].
func (h *PhotoTagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profile, ok := requireProfile(ctx, w, h.AccessService, domain.Roles()...)
	if !ok {
		return
	}

	var req hubsdk.UpdatePhotoTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	err := h.PhotoService.UpdateTags(ctx, profile, r.PathValue("id"), req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhotoNotFound):
			hubsdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrPhotoNotPermitted):
			hubsdk.ErrForbidden.WriteError(w)
		case errors.Is(err, service.ErrTooManyTags):
			hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest,
				err.Error()).WriteError(w)
		default:
			log.Error("tag update failed", "err", err)
			hubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPhotoResponse(p domain.Photo) hubsdk.PhotoResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return hubsdk.PhotoResponse{
		ID:         p.ID,
		URL:        p.URL,
		Title:      p.Title,
		UploadedBy: p.UploadedBy,
		Tags:       tags,
		Width:      p.Width,
		Height:     p.Height,
		CreatedAt:  p.CreatedAt.Unix(),
	}
}

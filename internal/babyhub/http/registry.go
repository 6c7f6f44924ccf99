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

type RegistryListHandler struct {
	AccessService   *service.AccessService
	RegistryService *service.RegistryService
}

// ServeHTTP godoc
//
//	@Summary		List Registry Items
//	@Description	List registry items with fulfillment progress, grouped by category. Visible to every role.
//	@Tags			Registry
//	@Produce		json
//	@Success		200	{object}	hubsdk.ListRegistryResponse	"items"
//	@Failure		401	{object}	hubsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/registry [get].
func (h *RegistryListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, ok := requireProfile(ctx, w, h.AccessService, domain.Roles()...); !ok {
		return
	}

	items, err := h.RegistryService.List(ctx)
	if err != nil {
		log.Error("registry listing failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	out := hubsdk.ListRegistryResponse{Items: make([]hubsdk.RegistryItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, toRegistryItemResponse(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type RegistryUpdateHandler struct {
	AccessService   *service.AccessService
	RegistryService *service.RegistryService
}

// ServeHTTP godoc
//
//	@Summary		Update Registry Item
//	@Description	Set an item's fulfilled count. Admin only. Negative counts clamp to zero; counts above target are allowed.
//	@Tags			Registry
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Item id"
//	@Param			request	body		hubsdk.UpdateRegistryItemRequest	true	"New count"
//	@Success		200		{object}	hubsdk.RegistryItemResponse			"id, current, target"
//	@Failure		400		{object}	hubsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	hubsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	hubsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	hubsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/registry/{id} [put].
func (h *RegistryUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, ok := requireProfile(ctx, w, h.AccessService, domain.RoleAdmin); !ok {
		return
	}

	var req hubsdk.UpdateRegistryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	item, err := h.RegistryService.SetCount(ctx, r.PathValue("id"), req.Current)
	if err != nil {
		if errors.Is(err, service.ErrRegistryItemNotFound) {
			hubsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("registry update failed", "err", err)
		hubsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRegistryItemResponse(item))
}

func toRegistryItemResponse(item domain.RegistryItem) hubsdk.RegistryItemResponse {
	return hubsdk.RegistryItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Icon:     item.Icon,
		Current:  item.Current,
		Target:   item.Target,
		Category: item.Category,
	}
}

package hubsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListPhotos returns the gallery, newest first.
func (s *Session) ListPhotos(ctx context.Context) (*ListPhotosResponse, error) {
	var out ListPhotosResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/photos", nil, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPhoto records a new photo for the authenticated profile.
func (s *Session) AddPhoto(ctx context.Context, req AddPhotoRequest) (*PhotoResponse, error) {
	var out PhotoResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/photos", req, s.accessToken, http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhotoTags replaces a photo's tag list.
func (s *Session) UpdatePhotoTags(ctx context.Context, photoID string, tags []string) error {
	req := UpdatePhotoTagsRequest{Tags: tags}
	return s.client.doJSON(ctx, http.MethodPatch,
		"/v1/photos/"+url.PathEscape(photoID)+"/tags", req, s.accessToken, http.StatusNoContent, nil)
}

// ListRegistry returns every registry item with fulfillment progress.
func (s *Session) ListRegistry(ctx context.Context) (*ListRegistryResponse, error) {
	var out ListRegistryResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/registry", nil, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRegistryItem sets an item's fulfilled count. Admin only.
func (s *Session) UpdateRegistryItem(ctx context.Context, itemID string, current int) (*RegistryItemResponse, error) {
	req := UpdateRegistryItemRequest{Current: current}

	var out RegistryItemResponse
	err := s.client.doJSON(ctx, http.MethodPut,
		"/v1/registry/"+url.PathEscape(itemID), req, s.accessToken, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

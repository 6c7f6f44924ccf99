package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/idx"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var (
	ErrPhotoNotFound     = errors.New("photo not found")
	ErrInvalidPhoto      = errors.New("photo url and title are required")
	ErrTooManyTags       = errors.New("too many tags")
	ErrPhotoNotPermitted = errors.New("only the uploader or an admin can edit a photo")
)

const maxPhotoTags = 10

// PhotoService manages gallery metadata. Image bytes live on external
// storage; only the URL and descriptive fields pass through here.
type PhotoService struct {
	Store store.Store
}

// List returns every photo, newest first.
func (s *PhotoService) List(ctx context.Context) ([]domain.Photo, error) {
	return s.Store.Photos().ListPhotos(ctx)
}

// Add records a new photo for uploadedBy.
func (s *PhotoService) Add(
	ctx context.Context,
	uploadedBy string,
	rawURL string,
	title string,
	tags []string,
	width, height int,
) (domain.Photo, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if rawURL == "" || title == "" {
		return domain.Photo{}, ErrInvalidPhoto
	}
	if u, err := url.Parse(rawURL); err != nil || u.Scheme == "" || u.Host == "" {
		return domain.Photo{}, ErrInvalidPhoto
	}

	tags, err := normalizeTags(tags)
	if err != nil {
		return domain.Photo{}, err
	}

	now := time.Now().UTC()
	photo := domain.Photo{
		ID:         idx.New().String(),
		URL:        rawURL,
		Title:      title,
		UploadedBy: uploadedBy,
		Tags:       tags,
		Width:      width,
		Height:     height,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.Photos().CreatePhoto(ctx, photo); err != nil {
		log.Error("failed to store photo", slog.Any("error", err))
		return domain.Photo{}, err
	}

	log.Info("photo added",
		slog.String("photo_id", photo.ID),
		slog.String("uploaded_by", uploadedBy),
	)
	return photo, nil
}

// UpdateTags replaces a photo's tag list. Only the uploader or an admin
// may edit.
func (s *PhotoService) UpdateTags(
	ctx context.Context,
	actor domain.Profile,
	photoID string,
	tags []string,
) error {
	log := slogx.FromContext(ctx)

	photo, err := s.Store.Photos().GetPhotoByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if photo.UploadedBy != actor.ID && actor.Role != domain.RoleAdmin {
		log.Warn("photo tag edit denied",
			slog.String("photo_id", photoID),
			slog.String("actor", actor.ID),
		)
		return ErrPhotoNotPermitted
	}

	tags, err = normalizeTags(tags)
	if err != nil {
		return err
	}

	if err := s.Store.Photos().UpdatePhotoTags(ctx, photoID, tags); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

// normalizeTags lowercases, trims, dedupes, and bounds the tag list. Tags
// are stored space-delimited so embedded spaces are rejected by collapsing
// them out.
func normalizeTags(tags []string) ([]string, error) {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.ReplaceAll(tag, " ", "-")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) > maxPhotoTags {
		return nil, ErrTooManyTags
	}
	return out, nil
}

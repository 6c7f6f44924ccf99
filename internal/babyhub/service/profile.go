package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var ErrProfileNotFound = errors.New("profile not found")

// Default poll settings for EnsureProfile. The identity provider usually
// pushes the profile row within a few hundred milliseconds of signup.
const (
	defaultPollInterval = 100 * time.Millisecond
	defaultPollTimeout  = 2 * time.Second
)

// ProfileService manages profile reads and role administration.
type ProfileService struct {
	Store store.Store

	// PollInterval and PollTimeout bound the EnsureProfile wait loop.
	// Zero values fall back to the defaults.
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// Get returns a single profile.
func (s *ProfileService) Get(ctx context.Context, profileID string) (domain.Profile, error) {
	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

// List returns all profiles, newest first. Admin only; enforced by the
// caller's middleware.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfiles(ctx)
}

// UpdateRole sets a profile's role directly, bypassing invite codes. This
// is the admin correction path for mis-assigned roles.
func (s *ProfileService) UpdateRole(ctx context.Context, profileID string, role domain.Role) error {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return ErrInvalidRole
	}

	err := s.Store.Profiles().UpdateRole(ctx, profileID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		log.Error("failed to update profile role", slog.Any("error", err))
		return err
	}

	log.Info("profile role updated",
		slog.String("profile_id", profileID),
		slog.String("role", role.String()),
	)
	return nil
}

// EnsureProfile waits for the profile row belonging to userID to appear,
// polling at a fixed interval up to a bounded timeout. The identity
// provider creates profiles asynchronously after signup; if the row has
// not shown up by the deadline we create it ourselves with the default
// role rather than failing the signup flow.
func (s *ProfileService) EnsureProfile(
	ctx context.Context,
	userID string,
	displayName string,
) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	interval := s.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	timeout := s.PollTimeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}

	deadline := time.Now().Add(timeout)
	for {
		profile, err := s.Store.Profiles().GetProfileByID(ctx, userID)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, err
		}

		if time.Now().After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return domain.Profile{}, ctx.Err()
		case <-time.After(interval):
		}
	}

	// Timed out waiting; create the profile synchronously. A concurrent
	// insert by the provider shows up as ErrAlreadyExists, in which case
	// the row is there and we just read it back.
	now := time.Now().UTC()
	profile := domain.Profile{
		ID:          userID,
		Role:        domain.DefaultRole,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Profiles().CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.Profiles().GetProfileByID(ctx, userID)
		}
		log.Error("failed to create profile", slog.Any("error", err))
		return domain.Profile{}, err
	}

	log.Info("profile created after poll timeout",
		slog.String("profile_id", userID),
	)
	return profile, nil
}

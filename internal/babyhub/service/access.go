package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

var (
	ErrUnauthenticated = errors.New("no authenticated profile")
	ErrForbidden       = errors.New("insufficient role")
)

// AccessService answers role-gate questions for server-side enforcement.
// Every protected route runs through RequireRole; there is no client-only
// authorization path.
type AccessService struct {
	Store store.Store
}

// RequireRole loads the profile for profileID and checks it holds one of
// the allowed roles. Missing profile maps to ErrUnauthenticated so a stale
// session cannot probe which checks exist.
func (s *AccessService) RequireRole(
	ctx context.Context,
	profileID string,
	allowed ...domain.Role,
) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if profileID == "" {
		return domain.Profile{}, ErrUnauthenticated
	}

	profile, err := s.Store.Profiles().GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrUnauthenticated
		}
		log.Error("failed to load profile for role check", slog.Any("error", err))
		return domain.Profile{}, err
	}

	for _, role := range allowed {
		if profile.Role == role {
			return profile, nil
		}
	}

	log.Warn("role check denied",
		slog.String("profile_id", profileID),
		slog.String("role", profile.Role.String()),
	)
	return domain.Profile{}, ErrForbidden
}

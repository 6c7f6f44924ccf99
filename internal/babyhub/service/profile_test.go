package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/idx"
)

func TestUpdateProfileRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.ProfileService{Store: st}

	friend := createTestProfile(t, st, domain.RoleFriend)

	t.Run("admin can promote", func(t *testing.T) {
		require.NoError(t, svc.UpdateRole(ctx, friend.ID, domain.RoleFamily))

		profile, err := svc.Get(ctx, friend.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, profile.Role)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		err := svc.UpdateRole(ctx, friend.ID, domain.Role("owner"))
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("unknown profile", func(t *testing.T) {
		err := svc.UpdateRole(ctx, idx.New().String(), domain.RoleFamily)
		require.ErrorIs(t, err, service.ErrProfileNotFound)
	})
}

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing profile immediately", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.ProfileService{Store: st}
		existing := createTestProfile(t, st, domain.RoleFamily)

		profile, err := svc.EnsureProfile(ctx, existing.ID, "ignored")
		require.NoError(t, err)
		require.Equal(t, existing.ID, profile.ID)
		require.Equal(t, domain.RoleFamily, profile.Role)
	})

	t.Run("creates profile with default role on timeout", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.ProfileService{
			Store:        st,
			PollInterval: 5 * time.Millisecond,
			PollTimeout:  20 * time.Millisecond,
		}

		userID := idx.New().String()
		profile, err := svc.EnsureProfile(ctx, userID, "New Guest")
		require.NoError(t, err)
		require.Equal(t, userID, profile.ID)
		require.Equal(t, domain.DefaultRole, profile.Role)
		require.Equal(t, "New Guest", profile.DisplayName)

		// The row persisted.
		stored, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultRole, stored.Role)
	})

	t.Run("picks up a row appearing mid-poll", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.ProfileService{
			Store:        st,
			PollInterval: 10 * time.Millisecond,
			PollTimeout:  2 * time.Second,
		}

		userID := idx.New().String()
		go func() {
			time.Sleep(30 * time.Millisecond)
			_ = st.Profiles().CreateProfile(context.Background(), domain.Profile{
				ID:          userID,
				Role:        domain.RoleFamily,
				DisplayName: "Provider Made Me",
			})
		}()

		profile, err := svc.EnsureProfile(ctx, userID, "fallback")
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, profile.Role)
		require.Equal(t, "Provider Made Me", profile.DisplayName)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.ProfileService{
			Store:        st,
			PollInterval: 10 * time.Millisecond,
			PollTimeout:  time.Minute,
		}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.EnsureProfile(cancelled, idx.New().String(), "x")
		require.ErrorIs(t, err, context.Canceled)
	})
}

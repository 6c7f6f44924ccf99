package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/idx"
)

func TestRequireRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.AccessService{Store: st}

	admin := createTestProfile(t, st, domain.RoleAdmin)
	family := createTestProfile(t, st, domain.RoleFamily)
	friend := createTestProfile(t, st, domain.RoleFriend)

	t.Run("allows matching role", func(t *testing.T) {
		profile, err := svc.RequireRole(ctx, admin.ID, domain.RoleAdmin)
		require.NoError(t, err)
		require.Equal(t, admin.ID, profile.ID)
	})

	t.Run("allows any of several roles", func(t *testing.T) {
		_, err := svc.RequireRole(ctx, family.ID, domain.RoleAdmin, domain.RoleFamily)
		require.NoError(t, err)
	})

	t.Run("denies insufficient role", func(t *testing.T) {
		_, err := svc.RequireRole(ctx, friend.ID, domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrForbidden)

		_, err = svc.RequireRole(ctx, family.ID, domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("empty profile id is unauthenticated", func(t *testing.T) {
		_, err := svc.RequireRole(ctx, "", domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("unknown profile id is unauthenticated", func(t *testing.T) {
		_, err := svc.RequireRole(ctx, idx.New().String(), domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}

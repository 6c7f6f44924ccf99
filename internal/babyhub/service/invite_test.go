package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store/drivers/sqlite"
	"github.com/bagelsfordinner/Babyhub/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func createTestProfile(t *testing.T, st *sqlite.Store, role domain.Role) domain.Profile {
	t.Helper()

	p := domain.Profile{
		ID:          idx.New().String(), // stand-in for a provider UUID
		Role:        role,
		DisplayName: "Test Person",
	}
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), p))
	return p
}

func TestIssue(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestProfile(t, st, domain.RoleAdmin)
	svc := &service.InviteService{Store: st}

	t.Run("issues a well-formed code", func(t *testing.T) {
		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(24*time.Hour), admin.ID)
		require.NoError(t, err)
		require.Len(t, invite.Code, 6)
		require.Regexp(t, `^[A-Z0-9]{6}$`, invite.Code)
		require.Equal(t, domain.RoleFamily, invite.Role)
		require.Equal(t, admin.ID, invite.CreatedBy)
		require.Empty(t, invite.UsedBy)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := svc.Issue(ctx, domain.Role("superuser"), time.Now().Add(time.Hour), admin.ID)
		require.ErrorIs(t, err, service.ErrInvalidRole)
	})

	t.Run("rejects past expiry", func(t *testing.T) {
		_, err := svc.Issue(ctx, domain.RoleFriend, time.Now().Add(-time.Hour), admin.ID)
		require.ErrorIs(t, err, service.ErrInvalidExpiry)
	})

	t.Run("rejects expiry more than a year out", func(t *testing.T) {
		_, err := svc.Issue(ctx, domain.RoleFriend, time.Now().Add(400*24*time.Hour), admin.ID)
		require.ErrorIs(t, err, service.ErrInvalidExpiry)
	})

	t.Run("store failure surfaces as issuance failure", func(t *testing.T) {
		broken := newTestStore(t)
		require.NoError(t, broken.Close())

		brokenSvc := &service.InviteService{Store: broken}
		_, err := brokenSvc.Issue(ctx, domain.RoleFriend, time.Now().Add(time.Hour), admin.ID)
		require.ErrorIs(t, err, service.ErrIssuanceFailed)
	})

	t.Run("issued codes are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for range 20 {
			invite, err := svc.Issue(ctx, domain.RoleFriend, time.Now().Add(time.Hour), admin.ID)
			require.NoError(t, err)
			require.False(t, seen[invite.Code], "duplicate code %s", invite.Code)
			seen[invite.Code] = true
		}
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestProfile(t, st, domain.RoleAdmin)
	svc := &service.InviteService{Store: st}

	invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
	require.NoError(t, err)

	t.Run("valid code returns its role", func(t *testing.T) {
		role, err := svc.Verify(ctx, invite.Code)
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, role)
	})

	t.Run("lookup is case-insensitive with whitespace trimmed", func(t *testing.T) {
		role, err := svc.Verify(ctx, "  "+lower(invite.Code)+" ")
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, role)
	})

	t.Run("unknown code is invalid", func(t *testing.T) {
		_, err := svc.Verify(ctx, "ZZZZZ0")
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("malformed code is invalid without a store roundtrip", func(t *testing.T) {
		for _, code := range []string{"", "ABC", "ABCDEFG", "ABC!EF"} {
			_, err := svc.Verify(ctx, code)
			require.ErrorIs(t, err, service.ErrInviteInvalid, "code %q", code)
		}
	})

	t.Run("expired code is invalid", func(t *testing.T) {
		frozen := time.Now()
		svc.Now = func() time.Time { return frozen }
		short, err := svc.Issue(ctx, domain.RoleFriend, frozen.Add(time.Minute), admin.ID)
		require.NoError(t, err)

		svc.Now = func() time.Time { return frozen.Add(2 * time.Minute) }
		defer func() { svc.Now = nil }()

		_, err = svc.Verify(ctx, short.Code)
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("grants the bound role exactly once", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		guest := createTestProfile(t, st, domain.RoleFriend)
		svc := &service.InviteService{Store: st}

		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		role, err := svc.Redeem(ctx, invite.Code, guest.ID, "Auntie May")
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, role)

		profile, err := st.Profiles().GetProfileByID(ctx, guest.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, profile.Role)
		require.Equal(t, "Auntie May", profile.DisplayName)

		// Second redemption, even by the same person, is rejected and is
		// indistinguishable from an unknown code.
		_, err = svc.Redeem(ctx, invite.Code, guest.ID, "Auntie May")
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("second redeemer loses and keeps their role", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		first := createTestProfile(t, st, domain.RoleFriend)
		second := createTestProfile(t, st, domain.RoleFriend)
		svc := &service.InviteService{Store: st}

		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, invite.Code, first.ID, "First")
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, invite.Code, second.ID, "Second")
		require.ErrorIs(t, err, service.ErrInviteInvalid)

		profile, err := st.Profiles().GetProfileByID(ctx, second.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleFriend, profile.Role, "loser's role must be untouched")

		// The recorded redeemer is the winner.
		stored, err := st.Invites().GetInviteByID(ctx, invite.ID)
		require.NoError(t, err)
		require.Equal(t, first.ID, stored.UsedBy)
	})

	t.Run("session without a profile row is unauthenticated", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		svc := &service.InviteService{Store: st}

		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, invite.Code, idx.New().String(), "Ghost")
		require.ErrorIs(t, err, service.ErrUnauthenticated)

		// The consume rolled back with the failed profile write, so the
		// code is still redeemable.
		role, err := svc.Verify(ctx, invite.Code)
		require.NoError(t, err)
		require.Equal(t, domain.RoleFamily, role)
	})

	t.Run("concurrent redeemers settle to one winner", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		svc := &service.InviteService{Store: st}

		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		const redeemers = 8
		profiles := make([]domain.Profile, redeemers)
		for i := range profiles {
			profiles[i] = createTestProfile(t, st, domain.RoleFriend)
		}

		errs := make([]error, redeemers)
		var wg sync.WaitGroup
		for i := range redeemers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.Redeem(ctx, invite.Code, profiles[i].ID, "Racer")
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
				continue
			}
			require.ErrorIs(t, err, service.ErrInviteInvalid)
		}
		require.Equal(t, 1, winners, "exactly one redemption must succeed")

		stored, err := st.Invites().GetInviteByID(ctx, invite.ID)
		require.NoError(t, err)

		promoted := 0
		for i, p := range profiles {
			got, err := st.Profiles().GetProfileByID(ctx, p.ID)
			require.NoError(t, err)
			if errs[i] == nil {
				require.Equal(t, p.ID, stored.UsedBy, "winner must be the recorded redeemer")
				require.Equal(t, domain.RoleFamily, got.Role)
				promoted++
			} else {
				require.Equal(t, domain.RoleFriend, got.Role, "losers keep their role")
			}
		}
		require.Equal(t, 1, promoted)
	})

	t.Run("expired code cannot be redeemed", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		guest := createTestProfile(t, st, domain.RoleFriend)
		svc := &service.InviteService{Store: st}

		frozen := time.Now()
		svc.Now = func() time.Time { return frozen }
		invite, err := svc.Issue(ctx, domain.RoleFamily, frozen.Add(time.Minute), admin.ID)
		require.NoError(t, err)

		svc.Now = func() time.Time { return frozen.Add(2 * time.Minute) }
		_, err = svc.Redeem(ctx, invite.Code, guest.ID, "Late")
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("empty display name keeps the existing one", func(t *testing.T) {
		st := newTestStore(t)
		admin := createTestProfile(t, st, domain.RoleAdmin)
		guest := createTestProfile(t, st, domain.RoleFriend)
		svc := &service.InviteService{Store: st}

		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, invite.Code, guest.ID, "")
		require.NoError(t, err)

		profile, err := st.Profiles().GetProfileByID(ctx, guest.ID)
		require.NoError(t, err)
		require.Equal(t, "Test Person", profile.DisplayName)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestProfile(t, st, domain.RoleAdmin)
	guest := createTestProfile(t, st, domain.RoleFriend)
	svc := &service.InviteService{Store: st}

	t.Run("unredeemed code can be revoked", func(t *testing.T) {
		invite, err := svc.Issue(ctx, domain.RoleFriend, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, invite.ID))

		_, err = svc.Verify(ctx, invite.Code)
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})

	t.Run("redeemed code cannot be revoked", func(t *testing.T) {
		invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
		require.NoError(t, err)

		_, err = svc.Redeem(ctx, invite.Code, guest.ID, "Guest")
		require.NoError(t, err)

		err = svc.Revoke(ctx, invite.ID)
		require.ErrorIs(t, err, service.ErrInviteRedeemed)

		// The audit trail survives.
		stored, err := st.Invites().GetInviteByID(ctx, invite.ID)
		require.NoError(t, err)
		require.Equal(t, guest.ID, stored.UsedBy)
	})

	t.Run("unknown id is invalid", func(t *testing.T) {
		err := svc.Revoke(ctx, idx.New().String())
		require.ErrorIs(t, err, service.ErrInviteInvalid)
	})
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestProfile(t, st, domain.RoleAdmin)
	guest := createTestProfile(t, st, domain.RoleFriend)
	svc := &service.InviteService{Store: st}

	frozen := time.Now()
	svc.Now = func() time.Time { return frozen }

	expiredUnused, err := svc.Issue(ctx, domain.RoleFriend, frozen.Add(time.Minute), admin.ID)
	require.NoError(t, err)
	expiredUsed, err := svc.Issue(ctx, domain.RoleFamily, frozen.Add(time.Minute), admin.ID)
	require.NoError(t, err)
	active, err := svc.Issue(ctx, domain.RoleFriend, frozen.Add(time.Hour), admin.ID)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, expiredUsed.Code, guest.ID, "Guest")
	require.NoError(t, err)

	svc.Now = func() time.Time { return frozen.Add(2 * time.Minute) }
	require.NoError(t, svc.PurgeExpired(ctx))

	listings, err := svc.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}
	require.NotContains(t, ids, expiredUnused.ID, "expired unredeemed codes are purged")
	require.Contains(t, ids, expiredUsed.ID, "redeemed codes are kept as audit trail")
	require.Contains(t, ids, active.ID)
}

func TestListIncludesRedeemerName(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := createTestProfile(t, st, domain.RoleAdmin)
	guest := createTestProfile(t, st, domain.RoleFriend)
	svc := &service.InviteService{Store: st}

	invite, err := svc.Issue(ctx, domain.RoleFamily, time.Now().Add(time.Hour), admin.ID)
	require.NoError(t, err)

	_, err = svc.Redeem(ctx, invite.Code, guest.ID, "Uncle Bob")
	require.NoError(t, err)

	listings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, guest.ID, listings[0].UsedBy)
	require.Equal(t, "Uncle Bob", listings[0].UsedByName)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

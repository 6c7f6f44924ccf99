package http_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	httpapi "github.com/bagelsfordinner/Babyhub/internal/babyhub/http"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/identity"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store/drivers/sqlite"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
)

const testBootstrapToken = "test-bootstrap-token-12345"

// stubVerifier stands in for the identity provider's token verification.
// Tokens are registered per test user instead of being real signed JWTs.
type stubVerifier struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (v *stubVerifier) VerifySession(token string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if id, ok := v.tokens[token]; ok {
		return id, nil
	}
	return "", identity.ErrInvalidSession
}

func (v *stubVerifier) issue(userID string) string {
	token := "session-" + userID
	v.mu.Lock()
	v.tokens[token] = userID
	v.mu.Unlock()
	return token
}

// fakeProvider implements the code-exchange half of identity.Provider with
// in-memory one-time codes.
type fakeProvider struct {
	mu       sync.Mutex
	sessions map[string]identity.Session
}

func (p *fakeProvider) ExchangeAuthorizationCode(_ context.Context, code string) (identity.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, ok := p.sessions[code]
	if !ok {
		return identity.Session{}, identity.ErrExchangeFailed
	}
	delete(p.sessions, code) // one-time use
	return session, nil
}

func (p *fakeProvider) VerifySession(string) (string, error) {
	return "", identity.ErrInvalidSession
}

func (p *fakeProvider) addCode(code string, session identity.Session) {
	p.mu.Lock()
	p.sessions[code] = session
	p.mu.Unlock()
}

// testHub is a fully wired service running against an in-memory database,
// reachable through the SDK client.
type testHub struct {
	store     *sqlite.Store
	verifier  *stubVerifier
	provider  *fakeProvider
	bootstrap *service.BootstrapService
	client    *hubsdk.Client
}

func newTestHub(t *testing.T) *testHub {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier := &stubVerifier{tokens: map[string]string{}}
	provider := &fakeProvider{sessions: map[string]identity.Session{}}

	router := httpapi.NewRouter(verifier, "test", st, slog.New(slog.DiscardHandler))

	inviteSvc := &service.InviteService{Store: st}
	profileSvc := &service.ProfileService{
		Store:        st,
		PollInterval: 10 * time.Millisecond,
		PollTimeout:  50 * time.Millisecond,
	}
	bootstrapSvc := &service.BootstrapService{
		Store:   st,
		Invites: inviteSvc,
		Token:   testBootstrapToken,
	}

	router.InviteService = inviteSvc
	router.AccessService = &service.AccessService{Store: st}
	router.ProfileService = profileSvc
	router.PhotoService = &service.PhotoService{Store: st}
	router.RegistryService = &service.RegistryService{Store: st}
	router.BootstrapService = bootstrapSvc
	router.CallbackService = &httpapi.CallbackDeps{
		Provider: provider,
		Profiles: profileSvc,
		Invites:  inviteSvc,
	}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testHub{
		store:     st,
		verifier:  verifier,
		provider:  provider,
		bootstrap: bootstrapSvc,
		client:    hubsdk.NewClient(server.URL),
	}
}

// seedProfile creates a profile directly in the store and returns an
// authenticated SDK session for it.
func (h *testHub) seedProfile(t *testing.T, role domain.Role, name string) (domain.Profile, *hubsdk.Session) {
	t.Helper()

	p := domain.Profile{
		ID:          uuid.NewString(),
		Role:        role,
		DisplayName: name,
	}
	require.NoError(t, h.store.Profiles().CreateProfile(context.Background(), p))

	return p, h.client.WithToken(h.verifier.issue(p.ID))
}

func requireAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	var apiErr *hubsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	if code != "" {
		require.Equal(t, code, apiErr.Code)
	}
}

func TestJoinFlow(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	admin, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	_, redeemerSession := hub.seedProfile(t, domain.RoleFriend, "Pending")
	_, lateSession := hub.seedProfile(t, domain.RoleFriend, "Too Late")

	invite, err := adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{Role: "family"})
	require.NoError(t, err)
	require.Len(t, invite.Code, 6)
	require.Equal(t, admin.ID, invite.CreatedBy)

	t.Run("verify returns role without consuming", func(t *testing.T) {
		resp, err := hub.client.VerifyInvite(ctx, invite.Code)
		require.NoError(t, err)
		require.Equal(t, invite.Code, resp.Code)
		require.Equal(t, "family", resp.Role)
	})

	t.Run("verify is case-insensitive", func(t *testing.T) {
		resp, err := hub.client.VerifyInvite(ctx, strings.ToLower(invite.Code))
		require.NoError(t, err)
		require.Equal(t, invite.Code, resp.Code)
	})

	t.Run("unknown code is indistinguishable from expired", func(t *testing.T) {
		_, err := hub.client.VerifyInvite(ctx, "ZZZZZ0")
		requireAPIError(t, err, 404, hubsdk.ErrorCodeInviteInvalid)
	})

	t.Run("redeem grants the bound role once", func(t *testing.T) {
		resp, err := redeemerSession.RedeemInvite(ctx, invite.Code, "Aunt Morgan")
		require.NoError(t, err)
		require.Equal(t, "family", resp.Role)

		me, err := redeemerSession.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "family", me.Role)
		require.Equal(t, "Aunt Morgan", me.DisplayName)
	})

	t.Run("second redemption looks like an unknown code", func(t *testing.T) {
		_, err := lateSession.RedeemInvite(ctx, invite.Code, "Somebody Else")
		requireAPIError(t, err, 404, hubsdk.ErrorCodeInviteInvalid)

		// Loser keeps their current role.
		me, err := lateSession.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "friend", me.Role)
	})

	t.Run("redeemed code no longer verifies", func(t *testing.T) {
		_, err := hub.client.VerifyInvite(ctx, invite.Code)
		requireAPIError(t, err, 404, hubsdk.ErrorCodeInviteInvalid)
	})
}

func TestAdminRouteAuthorization(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	friend, friendSession := hub.seedProfile(t, domain.RoleFriend, "Friend")

	t.Run("missing token is rejected", func(t *testing.T) {
		_, err := hub.client.WithToken("").ListInvites(ctx)
		requireAPIError(t, err, 401, "")
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		_, err := hub.client.WithToken("garbage").ListInvites(ctx)
		requireAPIError(t, err, 401, "")
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		_, err := friendSession.ListInvites(ctx)
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)

		_, err = friendSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{Role: "family"})
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)

		err = friendSession.UpdateProfileRole(ctx, friend.ID, "admin")
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)
	})

	t.Run("admin role passes the gate", func(t *testing.T) {
		_, err := adminSession.ListInvites(ctx)
		require.NoError(t, err)
	})
}

func TestAdminInviteManagement(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	_, redeemerSession := hub.seedProfile(t, domain.RoleFriend, "Cousin")

	t.Run("create validates input", func(t *testing.T) {
		_, err := adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{Role: "superuser"})
		requireAPIError(t, err, 400, hubsdk.ErrorCodeInvalidRequest)

		_, err = adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{
			Role:      "friend",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		})
		requireAPIError(t, err, 400, hubsdk.ErrorCodeInvalidRequest)
	})

	t.Run("revoke deletes an unredeemed code", func(t *testing.T) {
		invite, err := adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{
			Role:      "friend",
			ExpiresAt: time.Now().Add(48 * time.Hour).Unix(),
		})
		require.NoError(t, err)

		require.NoError(t, adminSession.RevokeInvite(ctx, invite.ID))

		listing, err := adminSession.ListInvites(ctx)
		require.NoError(t, err)
		require.Empty(t, listing.Invites)
	})

	t.Run("revoking a redeemed code conflicts and keeps the audit trail", func(t *testing.T) {
		invite, err := adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{Role: "family"})
		require.NoError(t, err)

		_, err = redeemerSession.RedeemInvite(ctx, invite.Code, "Cousin Jo")
		require.NoError(t, err)

		err = adminSession.RevokeInvite(ctx, invite.ID)
		requireAPIError(t, err, 409, hubsdk.ErrorCodeInviteRedeemed)

		listing, err := adminSession.ListInvites(ctx)
		require.NoError(t, err)
		require.Len(t, listing.Invites, 1)
		require.Equal(t, "Cousin Jo", listing.Invites[0].UsedByName)
	})

	t.Run("revoking an unknown id is not found", func(t *testing.T) {
		err := adminSession.RevokeInvite(ctx, "no-such-id")
		requireAPIError(t, err, 404, hubsdk.ErrorCodeNotFound)
	})
}

func TestUserAdministration(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	friend, friendSession := hub.seedProfile(t, domain.RoleFriend, "Friend")

	t.Run("lists every profile", func(t *testing.T) {
		listing, err := adminSession.ListProfiles(ctx)
		require.NoError(t, err)
		require.Len(t, listing.Profiles, 2)
	})

	t.Run("role change is visible to the user", func(t *testing.T) {
		require.NoError(t, adminSession.UpdateProfileRole(ctx, friend.ID, "family"))

		me, err := friendSession.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "family", me.Role)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		err := adminSession.UpdateProfileRole(ctx, friend.ID, "root")
		requireAPIError(t, err, 400, hubsdk.ErrorCodeInvalidRequest)
	})

	t.Run("unknown profile is not found", func(t *testing.T) {
		err := adminSession.UpdateProfileRole(ctx, uuid.NewString(), "family")
		requireAPIError(t, err, 404, hubsdk.ErrorCodeNotFound)
	})
}

func TestBootstrap(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	t.Run("rejects a wrong token", func(t *testing.T) {
		_, err := hub.client.Bootstrap(ctx, "wrong-token")
		requireAPIError(t, err, 401, hubsdk.ErrorCodeUnauthorized)
	})

	t.Run("seeds one code per role", func(t *testing.T) {
		resp, err := hub.client.Bootstrap(ctx, testBootstrapToken)
		require.NoError(t, err)
		require.Len(t, resp.Invites, 3)

		roles := map[string]bool{}
		for _, invite := range resp.Invites {
			require.Len(t, invite.Code, 6)
			require.Equal(t, domain.SystemProfileID, invite.CreatedBy)
			roles[invite.Role] = true
		}
		require.Equal(t, map[string]bool{"admin": true, "family": true, "friend": true}, roles)

		// The seeded admin code is a normal, redeemable invite.
		_, session := hub.seedProfile(t, domain.RoleFriend, "Founder")
		for _, invite := range resp.Invites {
			if invite.Role == "admin" {
				redeemed, err := session.RedeemInvite(ctx, invite.Code, "Founder")
				require.NoError(t, err)
				require.Equal(t, "admin", redeemed.Role)
			}
		}
	})

	t.Run("refuses to run twice", func(t *testing.T) {
		_, err := hub.client.Bootstrap(ctx, testBootstrapToken)
		requireAPIError(t, err, 409, hubsdk.ErrorCodeConflict)
	})

	t.Run("disabled bootstrap looks like a missing route", func(t *testing.T) {
		hub.bootstrap.Token = ""
		_, err := hub.client.Bootstrap(ctx, testBootstrapToken)
		requireAPIError(t, err, 404, hubsdk.ErrorCodeNotFound)
	})
}

func TestCallback(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	t.Run("exchanges a code and creates the profile", func(t *testing.T) {
		userID := uuid.NewString()
		hub.provider.addCode("one-time-code", identity.Session{
			UserID:      userID,
			Email:       "jess@example.com",
			AccessToken: "provider-token",
			ExpiresAt:   time.Now().Add(time.Hour),
		})

		resp, err := hub.client.ExchangeCallback(ctx, "one-time-code", "")
		require.NoError(t, err)
		require.Equal(t, "provider-token", resp.AccessToken)
		require.Equal(t, userID, resp.Profile.ID)
		require.Equal(t, "friend", resp.Profile.Role)
		require.Equal(t, "jess", resp.Profile.DisplayName)
		require.Empty(t, resp.GrantedRole)
	})

	t.Run("replayed code is rejected", func(t *testing.T) {
		_, err := hub.client.ExchangeCallback(ctx, "one-time-code", "")
		requireAPIError(t, err, 401, hubsdk.ErrorCodeUnauthorized)
	})

	t.Run("pending invite is redeemed during the callback", func(t *testing.T) {
		_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
		invite, err := adminSession.CreateInvite(ctx, hubsdk.CreateInviteRequest{Role: "family"})
		require.NoError(t, err)

		hub.provider.addCode("code-2", identity.Session{
			UserID:      uuid.NewString(),
			Email:       "sam@example.com",
			AccessToken: "provider-token-2",
			ExpiresAt:   time.Now().Add(time.Hour),
		})

		resp, err := hub.client.ExchangeCallback(ctx, "code-2", invite.Code)
		require.NoError(t, err)
		require.Equal(t, "family", resp.GrantedRole)
		require.Equal(t, "family", resp.Profile.Role)
	})

	t.Run("bad invite does not fail the login", func(t *testing.T) {
		hub.provider.addCode("code-3", identity.Session{
			UserID:      uuid.NewString(),
			Email:       "alex@example.com",
			AccessToken: "provider-token-3",
			ExpiresAt:   time.Now().Add(time.Hour),
		})

		resp, err := hub.client.ExchangeCallback(ctx, "code-3", "ZZZZZ1")
		require.NoError(t, err)
		require.Empty(t, resp.GrantedRole)
		require.Equal(t, "friend", resp.Profile.Role)
	})
}

func TestMeRequiresCompletedCallback(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	// Valid session token, but the callback never created a profile row.
	token := hub.verifier.issue(uuid.NewString())
	_, err := hub.client.WithToken(token).Me(ctx)
	requireAPIError(t, err, 401, hubsdk.ErrorCodeUnauthorized)
}

func TestPhotoRoutes(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	_, familySession := hub.seedProfile(t, domain.RoleFamily, "Parent")
	_, friendSession := hub.seedProfile(t, domain.RoleFriend, "Friend")

	var photoID string

	t.Run("family can add a photo", func(t *testing.T) {
		photo, err := familySession.AddPhoto(ctx, hubsdk.AddPhotoRequest{
			URL:   "https://photos.example.com/bath.jpg",
			Title: "Bath time",
			Tags:  []string{"Bath Time", "newborn"},
		})
		require.NoError(t, err)
		require.Equal(t, []string{"bath-time", "newborn"}, photo.Tags)
		photoID = photo.ID
	})

	t.Run("friend cannot add a photo", func(t *testing.T) {
		_, err := friendSession.AddPhoto(ctx, hubsdk.AddPhotoRequest{
			URL:   "https://photos.example.com/nope.jpg",
			Title: "Nope",
		})
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)
	})

	t.Run("rejects an invalid url", func(t *testing.T) {
		_, err := familySession.AddPhoto(ctx, hubsdk.AddPhotoRequest{
			URL:   "not a url",
			Title: "Broken",
		})
		requireAPIError(t, err, 400, hubsdk.ErrorCodeInvalidRequest)
	})

	t.Run("every role can browse the gallery", func(t *testing.T) {
		listing, err := friendSession.ListPhotos(ctx)
		require.NoError(t, err)
		require.Len(t, listing.Photos, 1)
		require.Equal(t, "Bath time", listing.Photos[0].Title)
	})

	t.Run("only the uploader or an admin edits tags", func(t *testing.T) {
		err := friendSession.UpdatePhotoTags(ctx, photoID, []string{"sneaky"})
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)

		require.NoError(t, adminSession.UpdatePhotoTags(ctx, photoID, []string{"first bath"}))

		listing, err := familySession.ListPhotos(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"first-bath"}, listing.Photos[0].Tags)
	})
}

func TestRegistryRoutes(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	_, adminSession := hub.seedProfile(t, domain.RoleAdmin, "Admin")
	_, friendSession := hub.seedProfile(t, domain.RoleFriend, "Friend")

	listing, err := friendSession.ListRegistry(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, listing.Items, "registry should be seeded by migrations")
	itemID := listing.Items[0].ID

	t.Run("count updates are admin only", func(t *testing.T) {
		_, err := friendSession.UpdateRegistryItem(ctx, itemID, 2)
		requireAPIError(t, err, 403, hubsdk.ErrorCodeForbidden)
	})

	t.Run("admin sets the fulfilled count", func(t *testing.T) {
		item, err := adminSession.UpdateRegistryItem(ctx, itemID, 2)
		require.NoError(t, err)
		require.Equal(t, 2, item.Current)
	})

	t.Run("negative counts clamp to zero", func(t *testing.T) {
		item, err := adminSession.UpdateRegistryItem(ctx, itemID, -5)
		require.NoError(t, err)
		require.Equal(t, 0, item.Current)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		_, err := adminSession.UpdateRegistryItem(ctx, "no-such-item", 1)
		requireAPIError(t, err, 404, hubsdk.ErrorCodeNotFound)
	})
}

func TestHealthEndpoints(t *testing.T) {
	ctx := t.Context()
	hub := newTestHub(t)

	t.Run("liveness always reports ok", func(t *testing.T) {
		health, err := hub.client.GetLiveness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
	})

	t.Run("readiness reflects database health", func(t *testing.T) {
		health, err := hub.client.GetReadiness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "ok", health.Checks.Database)

		require.NoError(t, hub.store.Close())

		_, err = hub.client.GetReadiness(ctx)
		requireAPIError(t, err, 503, "")
	})
}

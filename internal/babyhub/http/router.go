package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/store"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"

	_ "github.com/bagelsfordinner/Babyhub/api/babyhub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     httpx.SessionVerifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	InviteService    *service.InviteService
	AccessService    *service.AccessService
	ProfileService   *service.ProfileService
	PhotoService     *service.PhotoService
	RegistryService  *service.RegistryService
	BootstrapService *service.BootstrapService
	CallbackService  *CallbackDeps
}

func NewRouter(
	verifier httpx.SessionVerifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerJoin()
	r.registerCallback()
	r.registerMe()
	r.registerPhotos()
	r.registerRegistry()
	r.registerAdmin()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BabyHub Family Site API
//	@version		0.1.0
//	@description	Backend for a private family web site. Access is gated by short
//	@description	invite codes bound to a role (admin, family, friend); every
//	@description	protected endpoint verifies the caller's role server-side.
//
//	@contact.name				BabyHub
//	@contact.url				https://github.com/bagelsfordinner/Babyhub
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerJoin() {
	verifyHandler := &JoinVerifyHandler{InviteService: r.InviteService}
	redeemHandler := &JoinRedeemHandler{InviteService: r.InviteService}

	// GET /join/{code} - public landing page lookup, strict by IP to slow
	// down code guessing.
	r.Mux.Handle("GET /v1/join/{code}",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /join/redeem - authenticated, strict by user.
	r.Mux.Handle("POST /v1/join/redeem",
		httpx.Chain(redeemHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCallback() {
	h := &CallbackHandler{Deps: r.CallbackService}

	// GET /auth/callback - provider redirect target, strict by IP.
	r.Mux.Handle("GET /v1/auth/callback",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMe() {
	h := &MeHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPhotos() {
	listHandler := &PhotoListHandler{AccessService: r.AccessService, PhotoService: r.PhotoService}
	addHandler := &PhotoAddHandler{AccessService: r.AccessService, PhotoService: r.PhotoService}
	tagsHandler := &PhotoTagsHandler{AccessService: r.AccessService, PhotoService: r.PhotoService}

	r.Mux.Handle("GET /v1/photos",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Uploads are restricted to admin and family members.
	r.Mux.Handle("POST /v1/photos",
		httpx.Chain(addHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/photos/{id}/tags",
		httpx.Chain(tagsHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRegistry() {
	listHandler := &RegistryListHandler{AccessService: r.AccessService, RegistryService: r.RegistryService}
	updateHandler := &RegistryUpdateHandler{AccessService: r.AccessService, RegistryService: r.RegistryService}

	r.Mux.Handle("GET /v1/registry",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// Count updates are admin only; enforced inside the handler chain.
	r.Mux.Handle("PUT /v1/registry/{id}",
		httpx.Chain(updateHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	createHandler := &InviteCreateHandler{InviteService: r.InviteService}
	listHandler := &InviteListHandler{InviteService: r.InviteService}
	revokeHandler := &InviteRevokeHandler{InviteService: r.InviteService}
	usersHandler := &UserListHandler{ProfileService: r.ProfileService}
	roleHandler := &UserRoleHandler{ProfileService: r.ProfileService}

	// Every admin route goes through authn plus a server-side admin role
	// check before the handler runs.
	admin := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			RequireAdmin(r.AccessService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/admin/invites", admin(createHandler))
	r.Mux.Handle("GET /v1/admin/invites", admin(listHandler))
	r.Mux.Handle("DELETE /v1/admin/invites/{id}", admin(revokeHandler))
	r.Mux.Handle("GET /v1/admin/users", admin(usersHandler))
	r.Mux.Handle("PATCH /v1/admin/users/{id}", admin(roleHandler))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

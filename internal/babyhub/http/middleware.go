package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/domain"
	"github.com/bagelsfordinner/Babyhub/internal/babyhub/service"
	"github.com/bagelsfordinner/Babyhub/pkg/httpx"
	"github.com/bagelsfordinner/Babyhub/pkg/hubsdk"
	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// RequireAdmin loads the caller's profile, checks the admin role
// server-side, and stashes the profile in the request context. Runs after
// AuthnMiddleware.
func RequireAdmin(access *service.AccessService) httpx.Middleware {
	return RequireRole(access, domain.RoleAdmin)
}

// RequireRole is the generic role gate.
func RequireRole(access *service.AccessService, allowed ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			profile, err := access.RequireRole(ctx, httpx.UserIDFromContext(ctx), allowed...)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrUnauthenticated):
					hubsdk.ErrUnauthorized.WriteError(w)
				case errors.Is(err, service.ErrForbidden):
					hubsdk.ErrForbidden.WriteError(w)
				default:
					log.Error("role check failed", "err", err)
					hubsdk.ErrServerError.WriteError(w)
				}
				return
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyProfile, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// profileFromContext returns the profile stashed by RequireRole.
func profileFromContext(ctx context.Context) (domain.Profile, bool) {
	p, ok := ctx.Value(httpx.CtxKeyProfile).(domain.Profile)
	return p, ok
}

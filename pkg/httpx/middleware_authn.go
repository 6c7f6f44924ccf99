package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/bagelsfordinner/Babyhub/pkg/slogx"
)

// SessionVerifier validates a bearer session token issued by the identity
// provider and returns the stable user id it belongs to.
type SessionVerifier interface {
	VerifySession(token string) (userID string, err error)
}

// AuthnMiddleware verifies the Authorization bearer token and injects the
// user id into the request context. Requests without a valid session are
// rejected with 401 before reaching the handler.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			userID, err := v.VerifySession(raw)
			if err != nil {
				writeBearerError(w, "session verification failed")
				log.Warn("session verify failed", "err", err)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}

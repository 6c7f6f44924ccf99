package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the identity-provider user id of the session.
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyProfile holds the loaded profile after a role check.
	CtxKeyProfile ctxKey = "profile"
)

// UserIDFromContext returns the authenticated user id, or "" when the
// request carries no verified session.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

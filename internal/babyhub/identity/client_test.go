package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bagelsfordinner/Babyhub/internal/babyhub/identity"
)

func TestExchangeAuthorizationCode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "authorization_code", r.FormValue("grant_type"))
			require.Equal(t, "one-time-code", r.FormValue("code"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"access_token": "session-token",
				"token_type": "Bearer",
				"expires_in": 3600,
				"user_id": "3f1d9a52-7c1e-4b9b-9a21-0d6f2f2e8c10",
				"email": "nana@example.test"
			}`))
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, nil)
		session, err := client.ExchangeAuthorizationCode(t.Context(), "one-time-code")
		require.NoError(t, err)
		require.Equal(t, "3f1d9a52-7c1e-4b9b-9a21-0d6f2f2e8c10", session.UserID)
		require.Equal(t, "nana@example.test", session.Email)
		require.Equal(t, "session-token", session.AccessToken)
		require.False(t, session.ExpiresAt.IsZero())
	})

	t.Run("ReplayedCodeRejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, nil)
		_, err := client.ExchangeAuthorizationCode(t.Context(), "already-used")
		require.ErrorIs(t, err, identity.ErrExchangeFailed)
	})

	t.Run("IncompleteResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token_type": "Bearer"}`))
		}))
		defer srv.Close()

		client := identity.NewClient(srv.URL, nil)
		_, err := client.ExchangeAuthorizationCode(t.Context(), "code")
		require.ErrorIs(t, err, identity.ErrExchangeFailed)
	})
}

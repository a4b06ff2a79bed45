package auth

import (
	"net/http"
	"strings"

	"github.com/taskhive/taskhive/internal/platform/httpx"
	"github.com/taskhive/taskhive/internal/shared"
)

// RequireAuth gates protected routes behind a bearer token. The token is
// the second whitespace-delimited segment of the Authorization header.
// On success the embedded user identifier is attached to the request
// context; the user record is not re-fetched and no revocation check is
// performed.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) < 2 {
				httpx.RespondError(w, shared.ErrUnauthenticated)
				return
			}
			userID, err := VerifyToken(parts[1], secret)
			if err != nil {
				httpx.RespondError(w, err)
				return
			}
			ctx := shared.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

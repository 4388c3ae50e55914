package http

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/reportvault/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authenticate is the auth gate: it pulls the session token from the
// cookie, verifies the signature and attaches the resolved user id to
// the request context. It fails closed on a missing or invalid token.
func (s *HTTPServer) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, M{"verified": false, "message": "No token provided"})
			return
		}

		userID, err := auth.GetUserIDFromToken(cookie.Value, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, M{"verified": false, "message": "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// userIDFromContext returns the identity the auth gate resolved for
// this request.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

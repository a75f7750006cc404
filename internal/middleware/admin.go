package middleware

import (
	"context"
	"net/http"
)

// TokenCookie is the cookie carrying an admin token.
const TokenCookie = "token"

// Authorizer decides whether a request may mutate bookings.
// *auth.Gate satisfies it.
type Authorizer interface {
	Authorize(ctx context.Context, cookieToken, authorization string) bool
}

// NewAdminGate returns a middleware that lets a request through only when
// authz accepts its token cookie or Authorization header. Everything else is
// answered with 403 before the body is read.
func NewAdminGate(authz Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(TokenCookie); err == nil {
				token = c.Value
			}
			if !authz.Authorize(r.Context(), token, r.Header.Get("Authorization")) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

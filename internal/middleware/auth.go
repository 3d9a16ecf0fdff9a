// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/MacguffinTracker/internal/token"
)

type ctxKey string

const identityKey ctxKey = "identity"

// TokenAuth returns a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <token>" header signed with secret.
// On successful verification the token's claims are stored in the request
// context, so they can be used downstream as the authenticated identity.
// Missing, malformed, and expired tokens all get a 401.
func TokenAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "no token provided", http.StatusUnauthorized)
				return
			}

			claims, err := token.Parse(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), claims)))
		})
	}
}

// RequireAdmin rejects requests whose authenticated identity is not an admin.
// It must run after TokenAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := GetIdentityFromContext(r.Context())
		if identity == nil || !identity.IsAdmin {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ContextWithIdentity returns a context carrying the verified token claims.
func ContextWithIdentity(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, identityKey, claims)
}

// GetIdentityFromContext extracts the verified token claims from the request
// context. Returns nil if the request was not authenticated.
func GetIdentityFromContext(ctx context.Context) *token.Claims {
	val := ctx.Value(identityKey)
	if c, ok := val.(*token.Claims); ok {
		return c
	}
	return nil
}

// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/atinyakov/taskwarden/internal/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// BearerAuth is a middleware that enforces token authentication on every
// route it wraps.
//
// It expects an "Authorization: Bearer <token>" header. A missing or empty
// token is rejected with 401; a token that fails signature or expiry
// verification is rejected with 403. On success the token's claims are
// stored in the request context for downstream handlers.
func BearerAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(token, secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token part of the Authorization header.
// Returns an empty string if no bearer token is present.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// WithClaims returns a copy of ctx carrying the given token claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext extracts the authenticated user's claims from the
// request context. Returns nil if no claims are present.
func GetClaimsFromContext(ctx context.Context) *auth.Claims {
	val := ctx.Value(claimsKey)
	if c, ok := val.(*auth.Claims); ok {
		return c
	}
	return nil
}

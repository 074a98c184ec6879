package common

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	identityIDKey ctxKey = "identity_id"
	handleKey     ctxKey = "handle"
	adminKey      ctxKey = "admin"
)

// ViewerFromContext returns the authenticated identity, or AnonymousID if
// the request carried no (valid) token.
func ViewerFromContext(ctx context.Context) uint64 {
	if id, ok := ctx.Value(identityIDKey).(uint64); ok {
		return id
	}
	return AnonymousID
}

// HandleFromContext returns the authenticated identity's handle, or the empty
// string for anonymous requests.
func HandleFromContext(ctx context.Context) string {
	handle, _ := ctx.Value(handleKey).(string)
	return handle
}

func AdminFromContext(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

// RequireAuth rejects requests without a valid bearer token and injects the
// viewer identity into the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := claimsFromRequest(r)
		if err != nil {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// OptionalAuth injects the viewer identity when a valid token is present and
// otherwise lets the request through as anonymous. Read endpoints use this so
// public content stays reachable without a session.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := claimsFromRequest(r); err == nil {
			r = r.WithContext(withClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, identityIDKey, claims.IdentityID)
	ctx = context.WithValue(ctx, handleKey, claims.Handle)
	ctx = context.WithValue(ctx, adminKey, claims.Admin)
	return ctx
}

func claimsFromRequest(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrNotFound
	}
	return ValidToken(parts[1])
}

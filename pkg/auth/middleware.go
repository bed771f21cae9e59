package auth

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey contextKey = "user_id"
	roleKey   contextKey = "role"
)

// WithUser stores the acting user's id and role in the context.
func WithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// UserIDFromContext returns the acting user's id, if a session resolved.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// RoleFromContext returns the acting user's role. An authenticated user
// without an explicit role gets "user", same as an anonymous request;
// both classify as TierNone.
func RoleFromContext(ctx context.Context) string {
	v, ok := ctx.Value(roleKey).(string)
	if !ok || v == "" {
		return "user"
	}
	return v
}

// SessionResolver looks up the user bound to a session token.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (userID, role string, err error)
}

// EnsureForwardedFor guarantees the request carries a client-identifying
// X-Forwarded-For header, preferring in order: an existing forwarded-for
// value, X-Real-IP, the edge-provided CF-Connecting-IP, and finally a
// loopback placeholder. The value is a signal for downstream consumers;
// its authenticity is not verified here.
func EnsureForwardedFor(r *http.Request) {
	if r.Header.Get("X-Forwarded-For") != "" {
		return
	}
	ip := r.Header.Get("X-Real-IP")
	if ip == "" {
		ip = r.Header.Get("CF-Connecting-IP")
	}
	if ip == "" {
		ip = "127.0.0.1"
	}
	r.Header.Set("X-Forwarded-For", ip)
}

// ResolveSession returns middleware that normalizes the client address
// header and, when a valid session cookie is present, stores the acting
// user in the request context. A missing or invalid cookie leaves the
// request anonymous: each handler enforces its own authentication and
// role requirements per method.
func ResolveSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			EnsureForwardedFor(r)
			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				if userID, role, err := resolver.ResolveSession(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(WithUser(r.Context(), userID, role))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

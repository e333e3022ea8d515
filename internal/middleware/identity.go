package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	fallbackKey contextKey = "identity_fallback"
)

// Verifier resolves an identity token to the owner key it carries.
type Verifier interface {
	Verify(token string) (string, error)
}

// Identity returns middleware that resolves the caller's owner key from a
// Bearer token. Requests without an Authorization header use fallback and are
// marked as such, so RateLimiter keys them by IP.
func Identity(v Verifier, fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				ctx := context.WithValue(WithIdentity(r.Context(), fallback), fallbackKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			owner, err := v.Verify(parts[1])
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), owner)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying owner.
func WithIdentity(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, identityKey, owner)
}

// IdentityFromContext extracts the owner key set by Identity.
func IdentityFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(identityKey).(string)
	return owner, ok && owner != ""
}

// IsFallbackIdentity reports whether the identity on ctx is the shared
// default rather than one proven by a token.
func IsFallbackIdentity(ctx context.Context) bool {
	fallback, _ := ctx.Value(fallbackKey).(bool)
	return fallback
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

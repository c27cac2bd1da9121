package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bookmarkd/bookmarkd-go/internal/crypto"
	"github.com/bookmarkd/bookmarkd-go/internal/model"
)

// Identity is the authenticated caller, resolved once per request by the
// session guard and consumed by handlers as an ownership filter.
type Identity struct {
	UserID int64
	Email  string
}

// UserLoader checks that the account behind a token still exists.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type contextKey string

const identityKey contextKey = "identity"

// SessionGuard returns middleware that validates a Bearer token from the
// Authorization header, confirms the account still exists, and attaches the
// caller's Identity to the request context. Any failure is a 401; no guard
// state is mutated.
func SessionGuard(secret string, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			// A valid token for a deleted account is still a dead session.
			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := Identity{UserID: user.ID, Email: user.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request
// context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

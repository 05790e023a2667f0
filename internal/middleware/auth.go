package middleware

import (
	"context"
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/session"
)

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the authenticated session claims from context.
func ClaimsFromContext(ctx context.Context) (*session.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*session.Claims)
	return c, ok && c != nil
}

// WithClaims returns a copy of ctx carrying c.
func WithClaims(ctx context.Context, c *session.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// SessionReader verifies the session artifact attached to a request.
type SessionReader interface {
	Read(r *http.Request) (*session.Claims, error)
}

type AuthMiddleware struct {
	Sessions    SessionReader
	Revocations session.RevocationStore
}

func NewAuthMiddleware(sessions SessionReader, revocations session.RevocationStore) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions, Revocations: revocations}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Verify signed cookie (signature + expiry)
		claims, err := a.Sessions.Read(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Reject sessions ended by logout
		revoked, err := a.Revocations.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			logger.Error("revocation lookup failed", map[string]any{
				"error": err.Error(),
			})
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if revoked {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Continue with claims in context
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

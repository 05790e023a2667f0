package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	claims *session.Claims
	err    error
}

func (f fakeSessions) Read(*http.Request) (*session.Claims, error) {
	return f.claims, f.err
}

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f fakeRevocations) Revoke(context.Context, string, time.Time) error { return f.err }

func (f fakeRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	return f.revoked[id], f.err
}

func claimsFor(username string, admin bool) *session.Claims {
	return &session.Claims{
		UserID:           1,
		Username:         username,
		IsAdmin:          admin,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-" + username},
	}
}

func newRouter(am *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api", GinRequireAuth(am))
	api.GET("/me", func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})

	admin := api.Group("/admin", GinRequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return r
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRequireAuth_NoSession(t *testing.T) {
	r := newRouter(NewAuthMiddleware(fakeSessions{err: session.ErrNoSession}, fakeRevocations{}))

	rec := serve(r, "/api/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	r := newRouter(NewAuthMiddleware(fakeSessions{claims: claimsFor("alice", false)}, fakeRevocations{}))

	rec := serve(r, "/api/me")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice"}`, rec.Body.String())
}

func TestRequireAuth_Revoked(t *testing.T) {
	revs := fakeRevocations{revoked: map[string]bool{"jti-alice": true}}
	r := newRouter(NewAuthMiddleware(fakeSessions{claims: claimsFor("alice", false)}, revs))

	rec := serve(r, "/api/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RevocationStoreDown(t *testing.T) {
	revs := fakeRevocations{err: errors.New("redis down")}
	r := newRouter(NewAuthMiddleware(fakeSessions{claims: claimsFor("alice", false)}, revs))

	rec := serve(r, "/api/me")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redis")
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter(NewAuthMiddleware(fakeSessions{claims: claimsFor("bob", false)}, fakeRevocations{}))
	assert.Equal(t, http.StatusForbidden, serve(r, "/api/admin/ping").Code)

	r = newRouter(NewAuthMiddleware(fakeSessions{claims: claimsFor("root", true)}, fakeRevocations{}))
	rec := serve(r, "/api/admin/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRequireAdmin_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

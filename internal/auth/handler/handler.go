package handler

import (
	"context"
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/auth"
	"github.com/PythonShinobi/Otaku-Store/internal/auth/credentials"
	"github.com/PythonShinobi/Otaku-Store/internal/auth/resolver"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
)

const landingPath = "/"

// Authenticator is the local username/password strategy.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) credentials.Outcome
	Register(ctx context.Context, username, email, password string) (*auth.User, error)
}

// SessionIssuer hands out, verifies and clears the session cookie.
type SessionIssuer interface {
	Issue(w http.ResponseWriter, claims session.Claims) error
	Read(r *http.Request) (*session.Claims, error)
	Clear(w http.ResponseWriter)
}

type Handler struct {
	credentials Authenticator
	resolver    resolver.Resolver
	sessions    SessionIssuer
	revocations session.RevocationStore
}

func NewHandler(
	credentials Authenticator,
	resolver resolver.Resolver,
	sessions SessionIssuer,
	revocations session.RevocationStore,
) *Handler {
	return &Handler{
		credentials: credentials,
		resolver:    resolver,
		sessions:    sessions,
		revocations: revocations,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/register", h.Register)
	r.GET("/user", h.CurrentUser)
}

package handler

import (
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/auth/credentials"
	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

const (
	msgAuthFailed  = "Authentication failed"
	msgLoginFailed = "Login failed"
)

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	// an unreadable body is treated like missing fields
	_ = c.ShouldBind(&req)

	// 1. Local strategy
	outcome := h.credentials.Authenticate(
		c.Request.Context(),
		req.Username,
		req.Password,
	)

	switch outcome.Kind {
	case credentials.Authenticated:
	case credentials.Rejected:
		c.JSON(http.StatusUnauthorized, gin.H{"message": outcome.Reason})
		return
	default:
		logger.Error("login strategy failed", map[string]any{
			"username": req.Username,
			"error":    errString(outcome.Err),
		})
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgAuthFailed})
		return
	}

	// 2. Role elevation
	user, err := h.resolver.Elevate(c.Request.Context(), *outcome.User)
	if err != nil {
		logger.Error("role elevation failed", map[string]any{
			"user_id": outcome.User.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgAuthFailed})
		return
	}

	// 3. Claims + 4. cookie
	if err := h.sessions.Issue(c.Writer, session.NewClaims(user)); err != nil {
		logger.Error("session issue failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgLoginFailed})
		return
	}

	logger.Info("login succeeded", map[string]any{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"ip":       c.ClientIP(),
	})

	c.String(http.StatusOK, "Login successful")
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

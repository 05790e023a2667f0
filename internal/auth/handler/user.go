package handler

import (
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
)

type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func viewOf(c *session.Claims) *userView {
	return &userView{
		ID:       c.UserID,
		Username: c.Username,
		Email:    c.Email,
		IsAdmin:  c.IsAdmin,
	}
}

// CurrentUser reports the signed-in user, or null.
func (h *Handler) CurrentUser(c *gin.Context) {
	claims, err := h.sessions.Read(c.Request)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	revoked, err := h.revocations.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		logger.Error("revocation lookup failed", map[string]any{
			"error": err.Error(),
		})
	}
	if err != nil || revoked {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": viewOf(claims)})
}

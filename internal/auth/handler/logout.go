package handler

import (
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Logout(c *gin.Context) {
	claims, readErr := h.sessions.Read(c.Request)

	// 1. Clear cookie unconditionally
	h.sessions.Clear(c.Writer)

	// 2. Invalidate the token server-side so a copied cookie stops working
	if readErr == nil && claims.ExpiresAt != nil {
		if err := h.revocations.Revoke(
			c.Request.Context(),
			claims.ID,
			claims.ExpiresAt.Time,
		); err != nil {
			logger.Error("logout failed", map[string]any{
				"user_id": claims.UserID,
				"error":   err.Error(),
			})
			c.String(http.StatusInternalServerError, "Logout failed")
			return
		}

		logger.Info("logout", map[string]any{
			"user_id": claims.UserID,
			"ip":      c.ClientIP(),
		})
	}

	// 3. Idempotent redirect
	c.Redirect(http.StatusFound, landingPath)
}

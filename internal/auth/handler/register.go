package handler

import (
	"errors"
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/auth/credentials"
	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.credentials.Register(
		c.Request.Context(),
		req.Username,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
		case errors.Is(err, credentials.ErrInvalidRegistration),
			errors.Is(err, credentials.ErrPasswordTooShort),
			errors.Is(err, credentials.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("register failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	// The account already exists, so a failed elevation only costs the
	// admin flag until the next login.
	elevated, err := h.resolver.Elevate(c.Request.Context(), *user)
	if err != nil {
		logger.Error("role elevation failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		elevated = *user
	}

	if err := h.sessions.Issue(c.Writer, session.NewClaims(elevated)); err != nil {
		logger.Error("session issue failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "registered"})
}

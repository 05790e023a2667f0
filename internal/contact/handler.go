package contact

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	mailer "github.com/PythonShinobi/Otaku-Store/internal/mail"

	"github.com/gin-gonic/gin"
)

const subject = "New Contact Message"

type request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Handler struct {
	sender mailer.Sender
}

func NewHandler(sender mailer.Sender) *Handler {
	return &Handler{sender: sender}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/send-email", h.Send)
}

// Send forwards the contact form to the store inbox.
func (h *Handler) Send(c *gin.Context) {
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		c.String(http.StatusBadRequest, "Name, email and message are required.")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		c.String(http.StatusBadRequest, "Invalid email address.")
		return
	}

	err := h.sender.Send(c.Request.Context(), mailer.Message{
		FromName:  req.Name,
		FromEmail: req.Email,
		Subject:   subject,
		Body:      fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", req.Name, req.Email, req.Message),
	})
	if err != nil {
		logger.Error("send contact email failed", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Failed to send email.")
		return
	}

	logger.Info("contact email sent", nil)
	c.String(http.StatusOK, "Email has been sent.")
}

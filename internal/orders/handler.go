package orders

import (
	"net/http"
	"strings"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes expects r to already run the session middleware.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/orders", h.List)
	r.POST("/checkout", h.Checkout)
}

func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	items, err := h.store.ListItems(c.Request.Context(), claims.UserID, claims.IsAdmin)
	if err != nil {
		logger.Error("list orders failed", map[string]any{
			"user_id": claims.UserID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}

func (h *Handler) Checkout(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var req Checkout
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order"})
		return
	}

	// Not found rather than forbidden: the storefront shows this as
	// an unknown email.
	if !strings.EqualFold(strings.TrimSpace(req.Email), claims.Email) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Incorrect email"})
		return
	}

	if len(req.CartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cart is empty"})
		return
	}
	for _, it := range req.CartItems {
		if it.Quantity <= 0 || it.Price < 0 || strings.TrimSpace(it.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart item"})
			return
		}
	}

	orderID, err := h.store.PlaceOrder(c.Request.Context(), claims.UserID, req)
	if err != nil {
		logger.Error("checkout failed", map[string]any{
			"user_id": claims.UserID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error placing order"})
		return
	}

	logger.Info("order placed", map[string]any{
		"user_id":  claims.UserID,
		"order_id": orderID,
		"items":    len(req.CartItems),
	})
	c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "orderId": orderID})
}

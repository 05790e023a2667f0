package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/media"

	"github.com/gin-gonic/gin"
)

const (
	maxImageSize = 5 << 20
	// room for the text fields and multipart framing around the image
	maxFormSize = maxImageSize + 1<<20
)

type Handler struct {
	store    Store
	uploader media.Uploader
	folder   string
}

func NewHandler(store Store, uploader media.Uploader, folder string) *Handler {
	return &Handler{
		store:    store,
		uploader: uploader,
		folder:   folder,
	}
}

// RegisterRoutes mounts the public listing routes on public and the
// catalog mutations on admin.
func (h *Handler) RegisterRoutes(public gin.IRouter, admin gin.IRouter) {
	public.GET("/products", h.List)
	public.GET("/products/category/:category", h.ListByCategory)

	admin.POST("/add-product", h.Create)
	admin.DELETE("/products/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.store.List(c.Request.Context())
	if err != nil {
		serverError(c, "list products failed", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) ListByCategory(c *gin.Context) {
	products, err := h.store.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		serverError(c, "list category failed", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) Create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormSize)
	if err := c.Request.ParseMultipartForm(maxImageSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	category := strings.TrimSpace(c.PostForm("category"))
	priceRaw := c.PostForm("price")
	ratingRaw := c.PostForm("rating")

	if name == "" || description == "" || category == "" || priceRaw == "" || ratingRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, description, price, category and rating are required"})
		return
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	rating, err := strconv.ParseFloat(ratingRaw, 64)
	if err != nil || rating < 0 || rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating"})
		return
	}

	var imageURL *string
	file, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
		return
	default:
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
			return
		}

		key, err := media.ObjectKey(h.folder, file.Filename)
		if err != nil {
			serverError(c, "image key failed", err)
			return
		}

		f, err := file.Open()
		if err != nil {
			serverError(c, "open upload failed", err)
			return
		}
		defer f.Close()

		url, err := h.uploader.Upload(c.Request.Context(), key, file.Header.Get("Content-Type"), f)
		if err != nil {
			serverError(c, "image upload failed", err)
			return
		}
		imageURL = &url
	}

	product, err := h.store.Create(c.Request.Context(), NewProduct{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       imageURL,
		Rating:      rating,
	})
	if err != nil {
		serverError(c, "create product failed", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	err = h.store.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		serverError(c, "delete product failed", err)
	default:
		c.Status(http.StatusNoContent)
	}
}

func serverError(c *gin.Context, msg string, err error) {
	logger.Error(msg, map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.String(http.StatusInternalServerError, "Server Error")
}

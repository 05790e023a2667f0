package app

import (
	"context"
	"net/http"

	"github.com/PythonShinobi/Otaku-Store/internal/auth/credentials"
	"github.com/PythonShinobi/Otaku-Store/internal/auth/handler"
	"github.com/PythonShinobi/Otaku-Store/internal/auth/resolver"
	"github.com/PythonShinobi/Otaku-Store/internal/catalog"
	"github.com/PythonShinobi/Otaku-Store/internal/config"
	"github.com/PythonShinobi/Otaku-Store/internal/contact"
	"github.com/PythonShinobi/Otaku-Store/internal/middleware"
	"github.com/PythonShinobi/Otaku-Store/internal/orders"
	"github.com/PythonShinobi/Otaku-Store/internal/session"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {
	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	router, err := newRouter(cfg, infra)
	if err != nil {
		_ = infra.Close()
		return nil, nil, err
	}

	return router, infra.Close, nil
}

func newRouter(cfg config.Config, infra *Infra) (*gin.Engine, error) {
	// ----------------------------
	// Dependencies
	// ----------------------------

	issuer, err := session.NewIssuer(cfg.Session.Secret, cfg.Session.TTL, session.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})
	if err != nil {
		return nil, err
	}
	revocations := session.NewRedisStore(infra.Redis.Client)

	credentialService := credentials.NewService(
		credentials.NewPostgresStore(infra.DB),
		cfg.StoreTimeout,
	)
	roleResolver := resolver.NewDBResolver(infra.DB, cfg.AdminUsernames, cfg.StoreTimeout)

	authHandler := handler.NewHandler(credentialService, roleResolver, issuer, revocations)
	authMiddleware := middleware.NewAuthMiddleware(issuer, revocations)

	catalogHandler := catalog.NewHandler(catalog.NewPostgresStore(infra.DB), infra.Uploader, cfg.Media.Folder)
	ordersHandler := orders.NewHandler(orders.NewPostgresStore(infra.DB.DB))
	contactHandler := contact.NewHandler(infra.Mailer)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend server is running")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router)
	contactHandler.RegisterRoutes(router)

	// ----------------------------
	// Protected Routes
	// ----------------------------

	authed := router.Group("/")
	authed.Use(middleware.GinRequireAuth(authMiddleware))
	ordersHandler.RegisterRoutes(authed)

	admin := router.Group("/")
	admin.Use(middleware.GinRequireAuth(authMiddleware), middleware.GinRequireAdmin())
	catalogHandler.RegisterRoutes(router, admin)

	return router, nil
}

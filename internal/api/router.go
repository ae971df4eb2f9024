package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/ecomfire/storefront-api/docs"
	"github.com/ecomfire/storefront-api/internal/api/handler"
	"github.com/ecomfire/storefront-api/internal/api/middleware"
	"github.com/ecomfire/storefront-api/internal/core/service"
	"github.com/ecomfire/storefront-api/internal/infrastructure/config"
	storemongo "github.com/ecomfire/storefront-api/internal/infrastructure/db/mongo"
	storeredis "github.com/ecomfire/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(rate.Limit(20))))
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	catalogRepo := storemongo.NewCatalogRepository(db)
	identityRepo := storemongo.NewIdentityRepository(db)
	cartStore := storeredis.NewCartStore(rdb, cfg.CartTTL)
	denylist := storeredis.NewTokenDenylist(rdb)

	catalogService := service.NewCatalogService(catalogRepo, log)
	identityService := service.NewIdentityService(identityRepo, denylist, cfg.JWTSecret, cfg.JWTTTL, log)
	cartService := service.NewCartService(cartStore, catalogRepo, log)

	authHandler := handler.NewAuthHandler(identityService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	dashboardHandler := handler.NewDashboardHandler(catalogService)

	authRequired := middleware.Auth(cfg.JWTSecret, denylist)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/federated", authHandler.Federated)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Storefront routes ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:id", catalogHandler.Get)
	e.GET("/v1/catalog/facets", catalogHandler.Facets)

	// --- Cart routes (session-scoped, no auth required) ---
	cart := e.Group("/v1/cart", middleware.CartSession())
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:product_id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
	cart.POST("/checkout", cartHandler.Checkout)

	// --- Seller dashboard (auth identifies the seller; no role gate) ---
	dashboard := e.Group("/v1/dashboard", authRequired)
	dashboard.GET("/products", dashboardHandler.ListProducts)
	dashboard.POST("/products", dashboardHandler.CreateProduct)
	dashboard.DELETE("/products/:id", dashboardHandler.DeleteProduct)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

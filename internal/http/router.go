package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/floramar/flower-service/internal/metrics"
	"github.com/floramar/flower-service/internal/middleware"
	"github.com/floramar/flower-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit       int
	RateWindow      time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	SessionRequired bool
	SessionService  *service.SessionService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Session  *SessionHandler
	Health   *HealthHandler
}

// NewRouter creates and configures the Gin router for the flower service.
func NewRouter(handlers Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, handlers.Health, &cfg)

	api := router.Group("/api")
	registerCatalogRoutes(api, handlers.Catalog)
	registerSessionRoutes(api, handlers.Session)
	registerCartRoutes(api, handlers.Cart, handlers.Checkout, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept", "Cache-Control", "Authorization", "X-Session-Token", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// registerCatalogRoutes registers the read-only catalog routes.
func registerCatalogRoutes(api *gin.RouterGroup, handler *CatalogHandler) {
	catalog := api.Group("/catalog")
	catalog.GET("", handler.GetCatalog)
	catalog.GET("/products", handler.GetProducts)
	catalog.GET("/products/:id", handler.GetProduct)
	catalog.GET("/accessories", handler.GetAccessories)
}

// registerSessionRoutes registers session management routes.
func registerSessionRoutes(api *gin.RouterGroup, handler *SessionHandler) {
	if handler != nil {
		api.POST("/sessions", handler.OpenSession)
	}
}

// registerCartRoutes registers cart and checkout routes, optionally behind
// session token auth.
func registerCartRoutes(api *gin.RouterGroup, cart *CartHandler, checkout *CheckoutHandler, cfg *RouterConfig) {
	carts := api.Group("/carts")
	if cfg.SessionRequired && cfg.SessionService != nil {
		carts.Use(middleware.SessionAuth(cfg.SessionService))
	}

	carts.GET("/:id", cart.GetCart)
	carts.DELETE("/:id", cart.ClearCart)
	carts.POST("/:id/lines", cart.AddLine)
	carts.DELETE("/:id/lines/:lineID", cart.RemoveLine)
	carts.PUT("/:id/lines/:lineID/quantity", cart.SetQuantity)
	carts.DELETE("/:id/products/:productID/accessories/:accessoryID", cart.RemoveAccessory)
	carts.DELETE("/:id/products/:productID/latest", cart.RemoveMostRecentLine)
	carts.GET("/:id/products/:productID/quantity", cart.GetProductQuantity)
	carts.POST("/:id/selections/resolve", cart.ResolveSelections)
	carts.POST("/:id/checkout", checkout.Checkout)
}

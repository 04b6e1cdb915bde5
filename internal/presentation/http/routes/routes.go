package routes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/marketplace-api/internal/config"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
	"github.com/sangkips/marketplace-api/internal/presentation/http/handler"
	"github.com/sangkips/marketplace-api/internal/presentation/http/middleware"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Shop   *handler.ShopHandler
	Seller *handler.SellerHandler
	Admin  *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Sellers    middleware.SellerResolver
	Cfg        *config.Config
	Logger     *slog.Logger
}

// Setup creates the Gin router and registers all routes. Background work
// started for the router stops when ctx is cancelled.
func Setup(ctx context.Context, h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	rateLimiter := middleware.NewCallerRateLimiter(ctx, rateLimiterConfig(deps.Cfg.RateLimit))

	v1 := router.Group("/api/v1")
	{
		shop := v1.Group("/shop")
		shop.Use(middleware.OptionalAuthMiddleware(deps.JWTManager, deps.Sellers), rateLimiter.Middleware())
		registerShopRoutes(shop, h)

		seller := v1.Group("/seller")
		seller.Use(
			middleware.AuthMiddleware(deps.JWTManager, deps.Sellers),
			middleware.RequireRole(enum.UserRoleSeller),
			rateLimiter.Middleware(),
		)
		registerSellerRoutes(seller, h)

		admin := v1.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(deps.JWTManager, deps.Sellers),
			middleware.RequireRole(enum.UserRoleAdmin),
			rateLimiter.Middleware(),
		)
		registerAdminRoutes(admin, h)
	}

	return router
}

func rateLimiterConfig(cfg config.RateLimitConfig) middleware.RateLimiterConfig {
	limiterCfg := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		limiterCfg.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		limiterCfg.BurstSize = cfg.Requests
	}
	limiterCfg.CleanupInterval = 5 * time.Minute
	limiterCfg.EntryTTL = 10 * time.Minute
	return limiterCfg
}

func registerShopRoutes(shop *gin.RouterGroup, h *Handlers) {
	shop.GET("/products", h.Shop.ListProducts)
	shop.GET("/products/:ref", h.Shop.GetProduct)
	shop.GET("/products/:ref/reviews", h.Shop.ListReviews)
	shop.POST("/products/:ref/reviews", h.Shop.CreateReview)
	shop.GET("/categories", h.Shop.ListCategories)
	shop.GET("/me", h.Shop.Me)
	shop.GET("/orders", h.Shop.ListOrders)
	shop.GET("/orders/:id", h.Shop.GetOrder)
}

func registerSellerRoutes(seller *gin.RouterGroup, h *Handlers) {
	seller.GET("/profile", h.Seller.Profile)
	seller.PUT("/profile", h.Seller.UpdateProfile)
	seller.GET("/reviews", h.Seller.ListReviews)

	products := seller.Group("/products")
	{
		products.GET("", h.Seller.ListProducts)
		products.GET("/:id", h.Seller.GetProduct)
		products.PUT("/:id", h.Seller.UpdateProduct)
		products.DELETE("/:id", h.Seller.DeleteProduct)
		products.PUT("/:id/stock", h.Seller.UpdateStock)
	}

	orders := seller.Group("/orders")
	{
		orders.GET("", h.Seller.ListOrders)
		orders.GET("/:id", h.Seller.GetOrder)
		orders.PUT("/:id/status", h.Seller.UpdateOrderStatus)
	}

	analytics := seller.Group("/analytics")
	{
		analytics.GET("/sales", h.Seller.SalesAnalytics)
		analytics.GET("/top-products", h.Seller.TopProducts)
	}
}

func registerAdminRoutes(admin *gin.RouterGroup, h *Handlers) {
	analytics := admin.Group("/analytics")
	{
		analytics.GET("/platform", h.Admin.PlatformAnalytics)
		analytics.GET("/users", h.Admin.UserAnalytics)
	}

	users := admin.Group("/users")
	{
		users.GET("", h.Admin.ListUsers)
		users.GET("/:id", h.Admin.GetUser)
		users.POST("/:id/toggle-status", h.Admin.ToggleUserStatus)
	}

	sellers := admin.Group("/sellers")
	{
		sellers.GET("", h.Admin.ListSellers)
		sellers.GET("/pending", h.Admin.PendingSellers)
		sellers.POST("/:id/verify", h.Admin.VerifySeller)
		sellers.POST("/:id/reject", h.Admin.RejectSeller)
		sellers.POST("/:id/toggle-status", h.Admin.ToggleSellerStatus)
	}
}

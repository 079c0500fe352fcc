package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/infrastructure/config"
	"github.com/truaxis/storefront/internal/infrastructure/logger"
	"github.com/truaxis/storefront/internal/interfaces/http/handler"
	"github.com/truaxis/storefront/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Section  *handler.SectionHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Address  *handler.AddressHandler
	Order    *handler.OrderHandler
	User     *handler.UserHandler
	Report   *handler.ReportHandler
	System   *handler.SystemHandler
}

// Deps carries the cross-cutting pieces the middleware chain needs.
type Deps struct {
	Config *config.Config
	Logger *zap.Logger
	Auth   middleware.AuthConfig
}

// New builds the gin engine with the full storefront API mounted
// under /api/v1.
func New(deps Deps, h Handlers) *gin.Engine {
	cfg := deps.Config

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(limiter.Middleware())
	}

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")
	registerPublicRoutes(api, cfg, h)
	registerCustomerRoutes(api, deps.Auth, h)
	registerAdminRoutes(api, deps.Auth, h)

	return engine
}

func registerPublicRoutes(api *gin.RouterGroup, cfg *config.Config, h Handlers) {
	auth := api.Group("/auth")
	// Login and register get their own tighter limiter so credential
	// stuffing does not ride on the global budget.
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		auth.Use(limiter.Middleware())
	}
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	api.GET("/products", h.Product.List)
	api.GET("/products/:id", h.Product.Get)
	api.GET("/products/slug/:slug", h.Product.GetBySlug)
	api.GET("/sections", h.Section.List)
	api.GET("/sections/:slug", h.Section.GetBySlug)
}

func registerCustomerRoutes(api *gin.RouterGroup, authCfg middleware.AuthConfig, h Handlers) {
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authCfg))

	authed.POST("/auth/logout", h.Auth.Logout)

	authed.GET("/profile", h.Auth.Profile)
	authed.PUT("/profile", h.Auth.UpdateProfile)
	authed.POST("/profile/password", h.Auth.ChangePassword)

	authed.GET("/cart", h.Cart.Get)
	authed.DELETE("/cart", h.Cart.Clear)
	authed.POST("/cart/items", h.Cart.Add)
	authed.PUT("/cart/items/:id", h.Cart.UpdateQuantity)
	authed.DELETE("/cart/items/:id", h.Cart.Remove)

	authed.GET("/wishlist", h.Wishlist.List)
	authed.POST("/wishlist/items", h.Wishlist.Add)
	authed.DELETE("/wishlist/items/:id", h.Wishlist.Remove)
	authed.DELETE("/wishlist/product/:productID", h.Wishlist.RemoveByProduct)

	authed.GET("/addresses", h.Address.List)
	authed.POST("/addresses", h.Address.Create)
	authed.GET("/addresses/:id", h.Address.Get)
	authed.PUT("/addresses/:id", h.Address.Update)
	authed.DELETE("/addresses/:id", h.Address.Delete)

	authed.POST("/orders", h.Order.Checkout)
	authed.GET("/orders", h.Order.List)
	authed.GET("/orders/:id", h.Order.Get)
	authed.POST("/orders/:id/cancel", h.Order.Cancel)
	authed.GET("/orders/:id/receipt", h.Order.Receipt)
}

func registerAdminRoutes(api *gin.RouterGroup, authCfg middleware.AuthConfig, h Handlers) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(authCfg), middleware.RequireAdmin())

	admin.GET("/stats", h.Report.Dashboard)

	admin.GET("/users", h.User.List)
	admin.POST("/users", h.User.Create)
	admin.GET("/users/:id", h.User.Get)
	admin.PUT("/users/:id", h.User.Update)
	admin.PUT("/users/:id/active", h.User.SetActive)
	admin.PUT("/users/:id/password", h.User.ResetPassword)

	admin.GET("/products", h.Product.AdminList)
	admin.POST("/products", h.Product.Create)
	admin.GET("/products/:id", h.Product.AdminGet)
	admin.PUT("/products/:id", h.Product.Update)
	admin.POST("/products/:id/toggle", h.Product.ToggleActive)
	admin.DELETE("/products/:id", h.Product.Delete)

	admin.GET("/sections", h.Section.AdminList)
	admin.POST("/sections", h.Section.Create)
	admin.PUT("/sections/:id", h.Section.Update)
	admin.POST("/sections/:id/toggle", h.Section.ToggleActive)
	admin.DELETE("/sections/:id", h.Section.Delete)

	admin.GET("/orders", h.Order.AdminList)
	admin.GET("/orders/stats", h.Order.AdminStats)
	admin.GET("/orders/:id", h.Order.AdminGet)
	admin.PUT("/orders/:id/status", h.Order.AdminSetStatus)
	admin.GET("/orders/:id/receipt", h.Order.AdminReceipt)

	admin.GET("/system/stats", h.System.Stats)
}

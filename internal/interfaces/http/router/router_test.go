package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/infrastructure/config"
	"github.com/truaxis/storefront/internal/interfaces/http/handler"
	"github.com/truaxis/storefront/internal/interfaces/http/middleware"
)

func testDeps() Deps {
	return Deps{
		Config: &config.Config{
			App: config.AppConfig{Env: "test"},
			HTTP: config.HTTPConfig{
				MaxBodySize:           1 << 20,
				RateLimitEnabled:      true,
				RateLimitRequests:     100,
				RateLimitWindow:       time.Minute,
				AuthRateLimitEnabled:  true,
				AuthRateLimitRequests: 10,
				AuthRateLimitWindow:   time.Minute,
			},
		},
		Logger: zap.NewNop(),
		Auth:   middleware.AuthConfig{Logger: zap.NewNop()},
	}
}

func TestRouterMountsAPI(t *testing.T) {
	engine := New(testDeps(), Handlers{
		Auth:     &handler.AuthHandler{},
		Product:  &handler.ProductHandler{},
		Section:  &handler.SectionHandler{},
		Cart:     &handler.CartHandler{},
		Wishlist: &handler.WishlistHandler{},
		Address:  &handler.AddressHandler{},
		Order:    &handler.OrderHandler{},
		User:     &handler.UserHandler{},
		Report:   &handler.ReportHandler{},
		System:   &handler.SystemHandler{},
	})
	require.NotNil(t, engine)

	mounted := make(map[string]bool)
	for _, route := range engine.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /health",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/products",
		"GET /api/v1/products/:id",
		"GET /api/v1/products/slug/:slug",
		"GET /api/v1/sections",
		"GET /api/v1/cart",
		"POST /api/v1/cart/items",
		"GET /api/v1/wishlist",
		"GET /api/v1/addresses",
		"POST /api/v1/orders",
		"POST /api/v1/orders/:id/cancel",
		"GET /api/v1/orders/:id/receipt",
		"DELETE /api/v1/wishlist/product/:productID",
		"GET /api/v1/admin/users",
		"POST /api/v1/admin/users",
		"PUT /api/v1/admin/users/:id/password",
		"POST /api/v1/admin/products/:id/toggle",
		"DELETE /api/v1/admin/sections/:id",
		"PUT /api/v1/admin/orders/:id/status",
		"GET /api/v1/admin/orders/stats",
		"GET /api/v1/admin/orders/:id/receipt",
		"GET /api/v1/admin/stats",
	}
	for _, want := range expected {
		assert.True(t, mounted[want], "route not mounted: %s", want)
	}
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apporder "github.com/truaxis/storefront/internal/application/order"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
	"github.com/truaxis/storefront/internal/infrastructure/auth"
	"github.com/truaxis/storefront/internal/interfaces/http/middleware"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderRepository) FindAll(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderRepository) Count(ctx context.Context, filter order.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) ExistsByOrderNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) ExistsByReceiptNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepository) Stats(ctx context.Context) (*order.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Stats), args.Error(1)
}

type mockStockLedger struct {
	mock.Mock
}

func (m *mockStockLedger) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *mockStockLedger) Release(ctx context.Context, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *mockStockLedger) Set(ctx context.Context, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

// asUser injects claims the way RequireAuth would after validating a token.
func asUser(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &auth.Claims{
			UserID: userID.String(),
			Role:   role,
		})
		c.Next()
	}
}

func newOrderTestRouter(repo *mockOrderRepository, stock *mockStockLedger, userID uuid.UUID, role string) *gin.Engine {
	scope := &apporder.NoOpTransactionScope{OrderRepo: repo, StockLedger: stock}
	orderService := apporder.NewService(repo, scope, zap.NewNop())
	h := NewOrderHandler(nil, orderService, nil)

	r := gin.New()
	r.Use(asUser(userID, role))
	r.GET("/orders", h.List)
	r.GET("/orders/:id", h.Get)
	r.POST("/orders/:id/cancel", h.Cancel)
	r.PUT("/admin/orders/:id/status", h.AdminSetStatus)
	r.GET("/admin/orders/stats", h.AdminStats)
	return r
}

func confirmedOrder(t *testing.T, userID uuid.UUID) *order.Order {
	t.Helper()
	items := []order.OrderItem{
		{ProductID: uuid.New(), ProductTitle: "Classic Tee", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
	}
	o, err := order.NewOrder(userID, uuid.New(), order.PaymentCOD, items)
	require.NoError(t, err)
	o.AssignNumbers("ORD-20260830120000-AB12", "RCPAB12CD34")
	return o
}

func TestOrderHandlerList(t *testing.T) {
	userID := uuid.New()

	t.Run("returns the caller's orders with meta", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, userID)

		repo.On("FindByUser", mock.Anything, userID, mock.AnythingOfType("order.Filter")).
			Return([]*order.Order{o}, nil)
		repo.On("Count", mock.Anything, mock.AnythingOfType("order.Filter")).
			Return(int64(1), nil)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/orders?page=1&page_size=10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)
	})

	t.Run("rejects an invalid status filter", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/orders?status=bogus", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOrderHandlerGet(t *testing.T) {
	userID := uuid.New()

	t.Run("returns an owned order", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, userID)

		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/orders/"+o.ID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "ORD-20260830120000-AB12", data["order_number"])
	})

	t.Run("hides other users' orders behind 404", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, uuid.New())

		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/orders/"+o.ID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a malformed order id", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/orders/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandlerCancel(t *testing.T) {
	userID := uuid.New()

	t.Run("cancels and returns stock", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, userID)

		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		stock.On("Release", mock.Anything, o.Items[0].ProductID, 2).Return(nil)
		repo.On("SaveWithLock", mock.Anything, o).Return(nil)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/orders/"+o.ID.String()+"/cancel", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "cancelled", data["status"])
		stock.AssertExpectations(t)
	})

	t.Run("shipped orders cannot be cancelled", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, userID)
		require.NoError(t, o.TransitionTo(order.StatusShipped))

		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

		r := newOrderTestRouter(repo, stock, userID, "customer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/orders/"+o.ID.String()+"/cancel", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "INVALID_STATE", resp.Error.Code)
	})
}

func TestOrderHandlerAdminSetStatus(t *testing.T) {
	adminID := uuid.New()

	t.Run("ships a confirmed order", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, uuid.New())

		repo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
		repo.On("SaveWithLock", mock.Anything, o).Return(nil)

		r := newOrderTestRouter(repo, stock, adminID, "admin")
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/orders/"+o.ID.String()+"/status",
			strings.NewReader(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "shipped", data["status"])
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		o := confirmedOrder(t, uuid.New())

		r := newOrderTestRouter(repo, stock, adminID, "admin")
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/orders/"+o.ID.String()+"/status",
			strings.NewReader(`{"status":"teleported"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing order maps to 404", func(t *testing.T) {
		repo := new(mockOrderRepository)
		stock := new(mockStockLedger)
		orderID := uuid.New()

		repo.On("FindByID", mock.Anything, orderID).Return(nil, shared.ErrNotFound)

		r := newOrderTestRouter(repo, stock, adminID, "admin")
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/admin/orders/"+orderID.String()+"/status",
			strings.NewReader(`{"status":"shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandlerAdminStats(t *testing.T) {
	repo := new(mockOrderRepository)
	stock := new(mockStockLedger)

	repo.On("Stats", mock.Anything).Return(&order.Stats{
		TotalOrders:   18,
		PendingOrders: 5,
		ShippedOrders: 2,
		TotalRevenue:  "12499.50",
		OrdersByStatus: map[string]int64{
			"confirmed": 3,
			"pending":   2,
		},
	}, nil)

	r := newOrderTestRouter(repo, stock, uuid.New(), "admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/orders/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(18), data["total_orders"])
	assert.Equal(t, "12499.50", data["total_revenue"])
}

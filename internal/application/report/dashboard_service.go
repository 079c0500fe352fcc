package report

import (
	"context"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/identity"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// DashboardStats is the admin landing-page summary
type DashboardStats struct {
	TotalUsers     int64            `json:"total_users"`
	TotalProducts  int64            `json:"total_products"`
	TotalOrders    int64            `json:"total_orders"`
	PendingOrders  int64            `json:"pending_orders"`
	ShippedOrders  int64            `json:"shipped_orders"`
	TotalRevenue   string           `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

// DashboardService composes counters from across the store
type DashboardService struct {
	users    identity.UserRepository
	products catalog.ProductRepository
	orders   order.Repository
}

// NewDashboardService creates a dashboard service
func NewDashboardService(users identity.UserRepository, products catalog.ProductRepository, orders order.Repository) *DashboardService {
	return &DashboardService{
		users:    users,
		products: products,
		orders:   orders,
	}
}

// Dashboard returns the admin summary counters
func (s *DashboardService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	userCount, err := s.users.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx, catalog.ProductFilter{})
	if err != nil {
		return nil, err
	}
	orderStats, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:     userCount,
		TotalProducts:  productCount,
		TotalOrders:    orderStats.TotalOrders,
		PendingOrders:  orderStats.PendingOrders,
		ShippedOrders:  orderStats.ShippedOrders,
		TotalRevenue:   orderStats.TotalRevenue,
		OrdersByStatus: orderStats.OrdersByStatus,
	}, nil
}

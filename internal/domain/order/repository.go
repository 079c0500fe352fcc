package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/shared"
)

// Repository defines persistence operations for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByOrderNumber(ctx context.Context, number string) (*Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Order, error)
	FindAll(ctx context.Context, filter Filter) ([]*Order, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	ExistsByOrderNumber(ctx context.Context, number string) (bool, error)
	ExistsByReceiptNumber(ctx context.Context, number string) (bool, error)
	Save(ctx context.Context, order *Order) error
	SaveWithLock(ctx context.Context, order *Order) error
	Stats(ctx context.Context) (*Stats, error)
}

// Filter narrows order listings
type Filter struct {
	shared.Filter
	Status *OrderStatus
	From   *time.Time
	To     *time.Time
}

// Stats is the aggregate summary shown on the admin dashboard
type Stats struct {
	TotalOrders    int64            `json:"total_orders"`
	PendingOrders  int64            `json:"pending_orders"`
	ShippedOrders  int64            `json:"shipped_orders"`
	TotalRevenue   string           `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
}

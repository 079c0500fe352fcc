package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payment").
		Preload("Address")
}

// FindByID finds an order with its items, payment, and address
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.withAssociations(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByOrderNumber finds an order by its public number
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, number string) (*order.Order, error) {
	var o order.Order
	if err := r.withAssociations(ctx).Where("order_number = ?", number).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByUser returns a user's orders matching the filter, newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter order.Filter) ([]*order.Order, error) {
	var orders []*order.Order
	query := r.applyFilter(r.withAssociations(ctx).Where("user_id = ?", userID), filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll returns all orders matching the filter, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	var orders []*order.Order
	query := r.applyFilter(r.withAssociations(ctx), filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter order.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&order.Order{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByOrderNumber reports whether an order number is already taken
func (r *GormOrderRepository) ExistsByOrderNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("order_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByReceiptNumber reports whether a receipt number is already taken
func (r *GormOrderRepository) ExistsByReceiptNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("receipt_number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates an order together with its items and payment detail
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Omit("Address").Save(o).Error
}

// SaveWithLock updates an order's lifecycle fields guarded by its version
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	version := o.Version
	result := r.db.WithContext(ctx).
		Model(o).
		Where("id = ? AND version = ?", o.ID, version).
		Updates(map[string]interface{}{
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"cancelled_at":   o.CancelledAt,
			"delivered_at":   o.DeliveredAt,
			"version":        version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Order was modified by another transaction")
	}
	o.IncrementVersion()
	return nil
}

// Stats aggregates the order summary for the admin dashboard
func (r *GormOrderRepository) Stats(ctx context.Context) (*order.Stats, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	stats := &order.Stats{OrdersByStatus: make(map[string]int64)}
	for _, c := range counts {
		stats.OrdersByStatus[c.Status] = c.Count
		stats.TotalOrders += c.Count
		switch order.OrderStatus(c.Status) {
		case order.StatusPending, order.StatusConfirmed:
			stats.PendingOrders += c.Count
		case order.StatusShipped:
			stats.ShippedOrders += c.Count
		}
	}

	var revenue decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status <> ?", order.StatusCancelled).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		stats.TotalRevenue = revenue.Decimal.StringFixed(2)
	} else {
		stats.TotalRevenue = "0.00"
	}

	return stats, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter order.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query.Order("orders.created_at DESC")
}

func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter order.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("orders.status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("orders.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("orders.created_at <= ?", *filter.To)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("orders.order_number ILIKE ? OR orders.receipt_number ILIKE ?", pattern, pattern)
	}
	for key, value := range filter.Filters {
		if key == "user_id" {
			query = query.Where("orders.user_id = ?", value)
		}
	}
	return query
}

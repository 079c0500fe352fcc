package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/inventory"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// GormStockLedger implements inventory.StockLedger with conditional
// updates on the products table. The stock guard lives in the WHERE
// clause, so two checkouts racing for the last units serialize at the
// database and only one succeeds.
type GormStockLedger struct {
	db *gorm.DB
}

// NewGormStockLedger creates a new GormStockLedger
func NewGormStockLedger(db *gorm.DB) *GormStockLedger {
	return &GormStockLedger{db: db}
}

// Reserve decrements product stock, failing when not enough remains
func (l *GormStockLedger) Reserve(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	result := l.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrInsufficientStock
	}
	return nil
}

// Release returns previously reserved stock, after a cancellation
func (l *GormStockLedger) Release(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	result := l.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Set overwrites product stock with an absolute value, for admin
// corrections outside the reserve/release flow
func (l *GormStockLedger) Set(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}
	result := l.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("id = ?", productID).
		Update("stock", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ inventory.StockLedger = (*GormStockLedger)(nil)

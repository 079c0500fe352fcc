package persistence

import (
	"context"

	"gorm.io/gorm"

	appcheckout "github.com/truaxis/storefront/internal/application/checkout"
	apporder "github.com/truaxis/storefront/internal/application/order"
	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/identity"
	"github.com/truaxis/storefront/internal/domain/inventory"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shopping"
)

// gormTransactionalRepositories hands out repositories bound to one
// in-flight transaction. It satisfies the repository accessors of both
// the checkout and the order transaction scopes.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Orders() order.Repository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) Carts() shopping.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r *gormTransactionalRepositories) Addresses() identity.AddressRepository {
	return NewGormAddressRepository(r.tx)
}

func (r *gormTransactionalRepositories) Stock() inventory.StockLedger {
	return NewGormStockLedger(r.tx)
}

// GormCheckoutScope runs a checkout atomically within one database
// transaction.
type GormCheckoutScope struct {
	db *gorm.DB
}

// NewGormCheckoutScope creates a new GormCheckoutScope
func NewGormCheckoutScope(db *gorm.DB) *GormCheckoutScope {
	return &GormCheckoutScope{db: db}
}

// Execute runs fn inside a transaction, rolling back on error
func (s *GormCheckoutScope) Execute(ctx context.Context, fn func(repos appcheckout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// GormOrderScope runs order lifecycle changes atomically within one
// database transaction.
type GormOrderScope struct {
	db *gorm.DB
}

// NewGormOrderScope creates a new GormOrderScope
func NewGormOrderScope(db *gorm.DB) *GormOrderScope {
	return &GormOrderScope{db: db}
}

// Execute runs fn inside a transaction, rolling back on error
func (s *GormOrderScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

var (
	_ appcheckout.TransactionScope = (*GormCheckoutScope)(nil)
	_ apporder.TransactionScope    = (*GormOrderScope)(nil)
)

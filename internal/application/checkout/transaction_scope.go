package checkout

import (
	"context"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/identity"
	"github.com/truaxis/storefront/internal/domain/inventory"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shopping"
)

// TransactionScope runs checkout work inside one database transaction.
// If the function returns an error the transaction is rolled back, so a
// failed checkout leaves stock, cart and orders untouched.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories hands out repositories bound to the current
// transaction. Everything obtained here commits or rolls back together.
type TransactionalRepositories interface {
	Orders() order.Repository
	Products() catalog.ProductRepository
	Carts() shopping.CartRepository
	Addresses() identity.AddressRepository
	Stock() inventory.StockLedger
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests where rollback semantics are asserted separately.
type NoOpTransactionScope struct {
	OrderRepo   order.Repository
	ProductRepo catalog.ProductRepository
	CartRepo    shopping.CartRepository
	AddressRepo identity.AddressRepository
	StockLedger inventory.StockLedger
}

// Execute runs the function against the held repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() order.Repository { return s.OrderRepo }

// Products returns the product repository
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// Carts returns the cart repository
func (s *NoOpTransactionScope) Carts() shopping.CartRepository { return s.CartRepo }

// Addresses returns the address repository
func (s *NoOpTransactionScope) Addresses() identity.AddressRepository { return s.AddressRepo }

// Stock returns the stock ledger
func (s *NoOpTransactionScope) Stock() inventory.StockLedger { return s.StockLedger }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

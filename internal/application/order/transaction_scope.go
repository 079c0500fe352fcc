package order

import (
	"context"

	"github.com/truaxis/storefront/internal/domain/inventory"
	"github.com/truaxis/storefront/internal/domain/order"
)

// TransactionScope runs order lifecycle changes inside one database
// transaction. Cancelling an order returns its reserved stock, and both
// writes must land together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories hands out repositories bound to the current
// transaction.
type TransactionalRepositories interface {
	Orders() order.Repository
	Stock() inventory.StockLedger
}

// NoOpTransactionScope runs the function without a real transaction
type NoOpTransactionScope struct {
	OrderRepo   order.Repository
	StockLedger inventory.StockLedger
}

// Execute runs the function against the held repositories
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Orders returns the order repository
func (s *NoOpTransactionScope) Orders() order.Repository { return s.OrderRepo }

// Stock returns the stock ledger
func (s *NoOpTransactionScope) Stock() inventory.StockLedger { return s.StockLedger }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockLedger adjusts product stock levels atomically. Reserve must be
// a single conditional update so concurrent checkouts cannot oversell;
// it returns shared.ErrInsufficientStock when the guard fails. Set is
// the absolute write for admin corrections. All stock mutations go
// through the ledger; aggregate saves never write the stock column.
type StockLedger interface {
	Reserve(ctx context.Context, productID uuid.UUID, quantity int) error
	Release(ctx context.Context, productID uuid.UUID, quantity int) error
	Set(ctx context.Context, productID uuid.UUID, quantity int) error
}

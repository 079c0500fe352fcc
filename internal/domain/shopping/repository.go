package shopping

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines persistence operations for cart lines
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CartItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*CartItem, error)
	FindLine(ctx context.Context, userID, productID uuid.UUID, size string) (*CartItem, error)
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// WishlistRepository defines persistence operations for wishlist entries
type WishlistRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WishlistItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItem, error)
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	Save(ctx context.Context, item *WishlistItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProduct(ctx context.Context, userID, productID uuid.UUID) error
}

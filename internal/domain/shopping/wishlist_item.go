package shopping

import (
	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// WishlistItem marks a product a user saved for later. One row per
// user and product pair.
type WishlistItem struct {
	shared.BaseEntity
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_wishlist_user_product,unique"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index:idx_wishlist_user_product,unique"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// NewWishlistItem creates a wishlist entry
func NewWishlistItem(userID, productID uuid.UUID) (*WishlistItem, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User and product are required")
	}
	return &WishlistItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}, nil
}

// BelongsTo reports whether the entry is owned by the given user
func (w *WishlistItem) BelongsTo(userID uuid.UUID) bool {
	return w.UserID == userID
}

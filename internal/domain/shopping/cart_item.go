package shopping

import (
	"time"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// MaxQuantityPerLine caps how many units of one product a cart line may hold.
const MaxQuantityPerLine = 10

// CartItem is one product line in a user's cart. A user has at most one
// line per product and size combination; adding the same product again
// merges into the existing line.
type CartItem struct {
	shared.BaseEntity
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_cart_user_product,unique"`
	ProductID uuid.UUID        `gorm:"type:uuid;not null;index:idx_cart_user_product,unique"`
	Size      string           `gorm:"type:varchar(20);index:idx_cart_user_product,unique"`
	Color     string           `gorm:"type:varchar(50)"`
	Quantity  int              `gorm:"not null;default:1"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart line for a product
func NewCartItem(userID, productID uuid.UUID, quantity int, size, color string) (*CartItem, error) {
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User and product are required")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if quantity > MaxQuantityPerLine {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity exceeds the per-item limit")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
		Size:       size,
		Color:      color,
		Quantity:   quantity,
	}, nil
}

// Merge folds another quantity into this line, clamped to the per-line cap
func (c *CartItem) Merge(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	total := c.Quantity + quantity
	if total > MaxQuantityPerLine {
		total = MaxQuantityPerLine
	}
	c.Quantity = total
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the line quantity
func (c *CartItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if quantity > MaxQuantityPerLine {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity exceeds the per-item limit")
	}
	c.Quantity = quantity
	c.UpdatedAt = time.Now()
	return nil
}

// BelongsTo reports whether the line is owned by the given user
func (c *CartItem) BelongsTo(userID uuid.UUID) bool {
	return c.UserID == userID
}

package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcatalog "github.com/truaxis/storefront/internal/application/catalog"
	"github.com/truaxis/storefront/internal/domain/shopping"
)

// AddToCartRequest puts a product into the caller's cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10"`
	Size      string    `json:"size" binding:"omitempty,max=20"`
	Color     string    `json:"color" binding:"omitempty,max=50"`
}

// UpdateCartItemRequest changes a cart line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// AddToWishlistRequest saves a product for later
type AddToWishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// CartItemResponse represents one cart line in API responses
type CartItemResponse struct {
	ID        uuid.UUID                   `json:"id"`
	ProductID uuid.UUID                   `json:"product_id"`
	Quantity  int                         `json:"quantity"`
	Size      string                      `json:"size,omitempty"`
	Color     string                      `json:"color,omitempty"`
	Product   *appcatalog.ProductResponse `json:"product,omitempty"`
	LineTotal decimal.Decimal             `json:"line_total"`
	CreatedAt time.Time                   `json:"created_at"`
}

// CartResponse is the caller's whole cart with its running total
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
}

// WishlistItemResponse represents one saved product
type WishlistItemResponse struct {
	ID        uuid.UUID                   `json:"id"`
	ProductID uuid.UUID                   `json:"product_id"`
	Product   *appcatalog.ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
}

// ToCartItemResponse converts a cart line to its API shape
func ToCartItemResponse(item *shopping.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Size:      item.Size,
		Color:     item.Color,
		LineTotal: decimal.Zero,
		CreatedAt: item.CreatedAt,
	}
	if item.Product != nil {
		p := appcatalog.ToProductResponse(item.Product)
		resp.Product = &p
		resp.LineTotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	}
	return resp
}

// ToCartResponse converts cart lines to the cart API shape. Lines whose
// product has gone inactive still appear, but contribute nothing to the
// subtotal.
func ToCartResponse(items []*shopping.CartItem) CartResponse {
	resp := CartResponse{
		Items:    make([]CartItemResponse, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		line := ToCartItemResponse(item)
		resp.Items = append(resp.Items, line)
		resp.ItemCount += item.Quantity
		if item.Product != nil && item.Product.IsActive {
			resp.Subtotal = resp.Subtotal.Add(line.LineTotal)
		}
	}
	return resp
}

// ToWishlistItemResponse converts a wishlist entry to its API shape
func ToWishlistItemResponse(item *shopping.WishlistItem) WishlistItemResponse {
	resp := WishlistItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		CreatedAt: item.CreatedAt,
	}
	if item.Product != nil {
		p := appcatalog.ToProductResponse(item.Product)
		resp.Product = &p
	}
	return resp
}

// ToWishlistItemResponses converts wishlist entries to their API shape
func ToWishlistItemResponses(items []*shopping.WishlistItem) []WishlistItemResponse {
	out := make([]WishlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToWishlistItemResponse(item))
	}
	return out
}

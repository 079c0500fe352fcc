package handler

import (
	"github.com/gin-gonic/gin"

	appshopping "github.com/truaxis/storefront/internal/application/shopping"
)

// WishlistHandler serves the caller's wishlist.
type WishlistHandler struct {
	BaseHandler
	wishlistService *appshopping.WishlistService
}

// NewWishlistHandler creates a wishlist handler
func NewWishlistHandler(wishlistService *appshopping.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// List handles GET /api/v1/wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Add handles POST /api/v1/wishlist/items
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appshopping.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	items, err := h.wishlistService.Add(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// Remove handles DELETE /api/v1/wishlist/items/:id
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid wishlist item ID")
		return
	}

	if err := h.wishlistService.Remove(c.Request.Context(), userID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RemoveByProduct handles DELETE /api/v1/wishlist/product/:productID
func (h *WishlistHandler) RemoveByProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseUUIDParam(c, "productID")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.wishlistService.RemoveByProduct(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

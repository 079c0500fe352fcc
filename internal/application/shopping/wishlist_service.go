package shopping

import (
	"context"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
	"github.com/truaxis/storefront/internal/domain/shopping"
)

// WishlistService manages the caller's saved products
type WishlistService struct {
	wishlistRepo shopping.WishlistRepository
	productRepo  catalog.ProductRepository
}

// NewWishlistService creates a wishlist service
func NewWishlistService(wishlistRepo shopping.WishlistRepository, productRepo catalog.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// List returns the caller's wishlist
func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]WishlistItemResponse, error) {
	items, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToWishlistItemResponses(items), nil
}

// Add saves a product to the wishlist. Saving an already saved product
// is a no-op rather than an error.
func (s *WishlistService) Add(ctx context.Context, userID uuid.UUID, req AddToWishlistRequest) ([]WishlistItemResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		item, err := shopping.NewWishlistItem(userID, req.ProductID)
		if err != nil {
			return nil, err
		}
		if err := s.wishlistRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.List(ctx, userID)
}

// Remove deletes one entry from the wishlist
func (s *WishlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.wishlistRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.BelongsTo(userID) {
		return shared.ErrNotFound
	}
	return s.wishlistRepo.Delete(ctx, item.ID)
}

// RemoveByProduct deletes the entry for a product from the caller's
// wishlist, for clients that track products rather than entry IDs
func (s *WishlistService) RemoveByProduct(ctx context.Context, userID, productID uuid.UUID) error {
	return s.wishlistRepo.DeleteByProduct(ctx, userID, productID)
}

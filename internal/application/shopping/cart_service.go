package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
	"github.com/truaxis/storefront/internal/domain/shopping"
)

// CartService manages the caller's shopping cart
type CartService struct {
	cartRepo    shopping.CartRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a cart service
func NewCartService(cartRepo shopping.CartRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Get returns the caller's cart with its running total
func (s *CartService) Get(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToCartResponse(items)
	return &resp, nil
}

// Add puts a product into the cart. Adding a product already in the
// cart with the same size merges into the existing line. Stock is only
// checked at checkout; the cart itself accepts anything sellable.
func (s *CartService) Add(ctx context.Context, userID uuid.UUID, req AddToCartRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsSellable() {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is no longer available")
	}

	existing, err := s.cartRepo.FindLine(ctx, userID, req.ProductID, req.Size)
	switch {
	case err == nil:
		if err := existing.Merge(req.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		item, err := shopping.NewCartItem(userID, req.ProductID, req.Quantity, req.Size, req.Color)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.Get(ctx, userID)
}

// UpdateQuantity changes a cart line's quantity
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.BelongsTo(userID) {
		return nil, shared.ErrNotFound
	}
	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Remove deletes one line from the cart
func (s *CartService) Remove(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.BelongsTo(userID) {
		return nil, shared.ErrNotFound
	}
	if err := s.cartRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}

// Clear empties the caller's cart
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.DeleteByUser(ctx, userID)
}

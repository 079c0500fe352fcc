package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]*Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, product *Product) error
	SaveWithLock(ctx context.Context, product *Product) error
	ReassignSection(ctx context.Context, from, to uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductFilter narrows product listings
type ProductFilter struct {
	shared.Filter
	SectionID   *uuid.UUID
	SectionSlug string
	OnSale      *bool
	ActiveOnly  bool
	MinPrice    *float64
	MaxPrice    *float64
}

// SectionRepository defines persistence operations for sections
type SectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Section, error)
	FindBySlug(ctx context.Context, slug string) (*Section, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*Section, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, section *Section) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/truaxis/storefront/internal/domain/catalog"
)

// CreateProductRequest adds a product to the catalog
type CreateProductRequest struct {
	SKU           string           `json:"sku" binding:"required,min=1,max=50"`
	Title         string           `json:"title" binding:"required,min=1,max=200"`
	Slug          string           `json:"slug" binding:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Stock         int              `json:"stock" binding:"min=0"`
	SectionID     uuid.UUID        `json:"section_id" binding:"required"`
	Brand         string           `json:"brand" binding:"omitempty,max=100"`
	Images        []string         `json:"images"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
}

// UpdateProductRequest modifies an existing product
type UpdateProductRequest struct {
	Title         string           `json:"title" binding:"required,min=1,max=200"`
	Slug          string           `json:"slug" binding:"required,min=1,max=200"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	Stock         *int             `json:"stock" binding:"omitempty,min=0"`
	Brand         string           `json:"brand" binding:"omitempty,max=100"`
	Images        []string         `json:"images"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	IsActive      *bool            `json:"is_active"`
}

// ProductListFilter narrows product listings
type ProductListFilter struct {
	Search   string   `form:"search"`
	Section  string   `form:"section"`
	OnSale   *bool    `form:"on_sale"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,min=0"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	PageSize int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string   `form:"order_by" binding:"omitempty,oneof=created_at price title rating"`
	OrderDir string   `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	SKU           string          `json:"sku"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	OnSale        bool            `json:"on_sale"`
	Stock         int             `json:"stock"`
	InStock       bool            `json:"in_stock"`
	SectionID     uuid.UUID       `json:"section_id"`
	SectionSlug   string          `json:"section_slug,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Images        []string        `json:"images"`
	Sizes         []string        `json:"sizes"`
	Colors        []string        `json:"colors"`
	Rating        decimal.Decimal `json:"rating"`
	ReviewCount   int             `json:"review_count"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SectionRequest creates or updates a section
type SectionRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Slug         string `json:"slug" binding:"required,min=1,max=100"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// SectionResponse represents a section in API responses
type SectionResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToProductResponse converts a domain product to its API shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		OnSale:        p.OnSale,
		Stock:         p.Stock,
		InStock:       p.Stock > 0,
		SectionID:     p.SectionID,
		Brand:         p.Brand,
		Images:        p.Images,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
	if p.Section != nil {
		resp.SectionSlug = p.Section.Slug
	}
	return resp
}

// ToProductResponses converts products to their API shape
func ToProductResponses(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// ToSectionResponse converts a domain section to its API shape
func ToSectionResponse(s *catalog.Section) SectionResponse {
	return SectionResponse{
		ID:           s.ID,
		Name:         s.Name,
		Slug:         s.Slug,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSectionResponses converts sections to their API shape
func ToSectionResponses(sections []*catalog.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(sections))
	for _, s := range sections {
		out = append(out, ToSectionResponse(s))
	}
	return out
}

package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/truaxis/storefront/internal/domain/shared"
	"github.com/truaxis/storefront/internal/domain/shared/valueobject"
)

// StringList is a JSON-encoded list of strings stored in a jsonb column.
// Used for product images, sizes and colors.
type StringList []string

// Value implements driver.Valuer for database storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	*l = items
	return nil
}

// Product is the sellable catalog item aggregate
type Product struct {
	shared.BaseAggregateRoot
	SKU           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title         string          `gorm:"type:varchar(200);not null"`
	Slug          string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	OnSale        bool            `gorm:"not null;default:false"`
	Stock         int             `gorm:"not null;default:0"`
	SectionID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Section       *Section        `gorm:"foreignKey:SectionID"`
	Brand         string          `gorm:"type:varchar(100)"`
	Images        StringList      `gorm:"type:jsonb"`
	Sizes         StringList      `gorm:"type:jsonb"`
	Colors        StringList      `gorm:"type:jsonb"`
	Rating        decimal.Decimal `gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int             `gorm:"not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the catalog
func NewProduct(sku, title, slug string, price decimal.Decimal, stock int, sectionID uuid.UUID) (*Product, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if !slugPattern.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with hyphens")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if sectionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SECTION", "Product must belong to a section")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Title:             title,
		Slug:              slug,
		Price:             price,
		Stock:             stock,
		SectionID:         sectionID,
		Images:            StringList{},
		Sizes:             StringList{},
		Colors:            StringList{},
		IsActive:          true,
	}, nil
}

// UpdateDetails updates descriptive attributes
func (p *Product) UpdateDetails(title, slug, description, brand string) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with hyphens")
	}
	p.Title = title
	p.Slug = slug
	p.Description = description
	p.Brand = brand
	p.UpdatedAt = time.Now()
	return nil
}

// SetPrice updates the selling price. A positive original price above the
// selling price marks the product as on sale.
func (p *Product) SetPrice(price, originalPrice decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if originalPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Original price cannot be negative")
	}
	p.Price = price
	p.OriginalPrice = originalPrice
	p.OnSale = originalPrice.GreaterThan(price)
	p.UpdatedAt = time.Now()
	return nil
}

// SetStock replaces the stock level
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}

// SetVariants replaces the product's images, sizes and colors
func (p *Product) SetVariants(images, sizes, colors []string) {
	p.Images = images
	p.Sizes = sizes
	p.Colors = colors
	p.UpdatedAt = time.Now()
}

// Activate makes the product sellable
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

// IsSellable reports whether the product can be added to an order
func (p *Product) IsSellable() bool {
	return p.IsActive
}

// HasStock reports whether the requested quantity is available
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// UnitPrice returns the selling price as money
func (p *Product) UnitPrice() valueobject.Money {
	return valueobject.NewMoneyINR(p.Price)
}

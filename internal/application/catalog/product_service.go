package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/inventory"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo catalog.ProductRepository
	sectionRepo catalog.SectionRepository
	stockLedger inventory.StockLedger
	logger      *zap.Logger
}

// NewProductService creates a product service
func NewProductService(productRepo catalog.ProductRepository, sectionRepo catalog.SectionRepository, stockLedger inventory.StockLedger, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		sectionRepo: sectionRepo,
		stockLedger: stockLedger,
		logger:      logger,
	}
}

func buildProductFilter(filter ProductListFilter, activeOnly bool) catalog.ProductFilter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	return catalog.ProductFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		SectionSlug: filter.Section,
		OnSale:      filter.OnSale,
		ActiveOnly:  activeOnly,
		MinPrice:    filter.MinPrice,
		MaxPrice:    filter.MaxPrice,
	}
}

// List returns active products for the storefront
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	f := buildProductFilter(filter, true)
	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// ListAll returns every product including inactive, for admins
func (s *ProductService) ListAll(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	f := buildProductFilter(filter, false)
	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// GetBySlug returns an active product by its slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, shared.ErrNotFound
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Get returns an active product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, shared.ErrNotFound
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns any product by ID, for admins
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Create adds a product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.sectionRepo.FindByID(ctx, req.SectionID); err != nil {
		return nil, shared.NewDomainError("INVALID_SECTION", "Section does not exist")
	}

	exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SKU_TAKEN", "A product with this SKU already exists")
	}
	exists, err = s.productRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A product with this slug already exists")
	}

	product, err := catalog.NewProduct(req.SKU, req.Title, req.Slug, req.Price, req.Stock, req.SectionID)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	product.Brand = req.Brand
	product.SetVariants(req.Images, req.Sizes, req.Colors)

	originalPrice := decimal.Zero
	if req.OriginalPrice != nil {
		originalPrice = *req.OriginalPrice
	}
	if err := product.SetPrice(req.Price, originalPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU))

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update modifies an existing product. Price changes never touch
// already placed orders.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != product.Slug {
		exists, err := s.productRepo.ExistsBySlug(ctx, req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("SLUG_TAKEN", "A product with this slug already exists")
		}
	}

	if err := product.UpdateDetails(req.Title, req.Slug, req.Description, req.Brand); err != nil {
		return nil, err
	}

	originalPrice := product.OriginalPrice
	if req.OriginalPrice != nil {
		originalPrice = *req.OriginalPrice
	}
	if err := product.SetPrice(req.Price, originalPrice); err != nil {
		return nil, err
	}

	if req.Images != nil || req.Sizes != nil || req.Colors != nil {
		images := []string(product.Images)
		sizes := []string(product.Sizes)
		colors := []string(product.Colors)
		if req.Images != nil {
			images = req.Images
		}
		if req.Sizes != nil {
			sizes = req.Sizes
		}
		if req.Colors != nil {
			colors = req.Colors
		}
		product.SetVariants(images, sizes, colors)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	// Stock moves through the ledger so a checkout racing this update
	// keeps its reservation; the aggregate save never writes stock.
	if req.Stock != nil {
		if err := s.stockLedger.Set(ctx, product.ID, *req.Stock); err != nil {
			return nil, err
		}
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// ToggleActive flips a product's storefront visibility
func (s *ProductService) ToggleActive(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.IsActive {
		product.Deactivate()
	} else {
		product.Activate()
	}
	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete deactivates a product rather than removing its rows, so order
// history keeps its references.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deactivate()
	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return err
	}
	s.logger.Info("product deactivated", zap.String("product_id", id.String()))
	return nil
}

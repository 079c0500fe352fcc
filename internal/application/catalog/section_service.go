package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// fallbackSectionSlug receives products from force-deleted sections
const fallbackSectionSlug = "miscellaneous"

// SectionService handles storefront section operations
type SectionService struct {
	sectionRepo catalog.SectionRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSectionService creates a section service
func NewSectionService(sectionRepo catalog.SectionRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns active sections in display order
func (s *SectionService) List(ctx context.Context) ([]SectionResponse, error) {
	sections, err := s.sectionRepo.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}
	return ToSectionResponses(sections), nil
}

// ListAll returns every section including inactive, for admins
func (s *SectionService) ListAll(ctx context.Context) ([]SectionResponse, error) {
	sections, err := s.sectionRepo.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	return ToSectionResponses(sections), nil
}

// GetBySlug returns a section by its slug
func (s *SectionService) GetBySlug(ctx context.Context, slug string) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToSectionResponse(section)
	return &resp, nil
}

// Create adds a section
func (s *SectionService) Create(ctx context.Context, req SectionRequest) (*SectionResponse, error) {
	exists, err := s.sectionRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A section with this slug already exists")
	}

	section, err := catalog.NewSection(req.Name, req.Slug, req.Description, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	s.logger.Info("section created", zap.String("slug", section.Slug))

	resp := ToSectionResponse(section)
	return &resp, nil
}

// Update modifies a section
func (s *SectionService) Update(ctx context.Context, id uuid.UUID, req SectionRequest) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != section.Slug {
		exists, err := s.sectionRepo.ExistsBySlug(ctx, req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("SLUG_TAKEN", "A section with this slug already exists")
		}
	}

	if err := section.Update(req.Name, req.Slug, req.Description, req.DisplayOrder); err != nil {
		return nil, err
	}
	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}

	resp := ToSectionResponse(section)
	return &resp, nil
}

// Delete removes a section. A section that still holds products is only
// removed with force, which moves its products to the Miscellaneous
// fallback section first.
func (s *SectionService) Delete(ctx context.Context, id uuid.UUID, force bool) error {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if section.Slug == fallbackSectionSlug {
		return shared.NewDomainError("INVALID_INPUT", "The fallback section cannot be deleted")
	}

	count, err := s.productRepo.Count(ctx, catalog.ProductFilter{SectionID: &id})
	if err != nil {
		return err
	}
	if count > 0 {
		if !force {
			return shared.NewDomainError("SECTION_NOT_EMPTY", "Cannot delete a section that still has products")
		}
		fallback, err := s.fallbackSection(ctx)
		if err != nil {
			return err
		}
		if err := s.productRepo.ReassignSection(ctx, id, fallback.ID); err != nil {
			return err
		}
	}

	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("section deleted",
		zap.String("slug", section.Slug),
		zap.Bool("force", force),
		zap.Int64("moved_products", count))
	return nil
}

func (s *SectionService) fallbackSection(ctx context.Context) (*catalog.Section, error) {
	fallback, err := s.sectionRepo.FindBySlug(ctx, fallbackSectionSlug)
	if err == nil {
		return fallback, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	fallback, err = catalog.NewSection("Miscellaneous", fallbackSectionSlug, "Other products", 999)
	if err != nil {
		return nil, err
	}
	if err := s.sectionRepo.Save(ctx, fallback); err != nil {
		return nil, err
	}
	return fallback, nil
}

// ToggleActive flips a section's visibility
func (s *SectionService) ToggleActive(ctx context.Context, id uuid.UUID) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	section.ToggleActive()
	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	resp := ToSectionResponse(section)
	return &resp, nil
}

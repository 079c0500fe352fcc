package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// GormSectionRepository implements catalog.SectionRepository using GORM
type GormSectionRepository struct {
	db *gorm.DB
}

// NewGormSectionRepository creates a new GormSectionRepository
func NewGormSectionRepository(db *gorm.DB) *GormSectionRepository {
	return &GormSectionRepository{db: db}
}

// FindByID finds a section by ID
func (r *GormSectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Section, error) {
	var section catalog.Section
	if err := r.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindBySlug finds a section by its URL slug
func (r *GormSectionRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Section, error) {
	var section catalog.Section
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &section, nil
}

// FindAll returns sections ordered for display
func (r *GormSectionRepository) FindAll(ctx context.Context, activeOnly bool) ([]*catalog.Section, error) {
	var sections []*catalog.Section
	query := r.db.WithContext(ctx).Order("display_order ASC, name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

// ExistsBySlug reports whether a section with the given slug exists
func (r *GormSectionRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Section{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a section
func (r *GormSectionRepository) Save(ctx context.Context, section *catalog.Section) error {
	return r.db.WithContext(ctx).Save(section).Error
}

// Delete removes a section
func (r *GormSectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/truaxis/storefront/internal/domain/shared"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Section represents a storefront category (e.g. "men", "accessories")
type Section struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description  string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Section) TableName() string {
	return "sections"
}

// NewSection creates a new catalog section
func NewSection(name, slug, description string, displayOrder int) (*Section, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Section name cannot be empty")
	}
	if !slugPattern.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with hyphens")
	}

	return &Section{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Slug:         slug,
		Description:  description,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}, nil
}

// Update updates the section's attributes
func (s *Section) Update(name, slug, description string, displayOrder int) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Section name cannot be empty")
	}
	if !slugPattern.MatchString(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with hyphens")
	}
	s.Name = name
	s.Slug = slug
	s.Description = description
	s.DisplayOrder = displayOrder
	s.UpdatedAt = time.Now()
	return nil
}

// ToggleActive flips the active flag
func (s *Section) ToggleActive() {
	s.IsActive = !s.IsActive
	s.UpdatedAt = time.Now()
}

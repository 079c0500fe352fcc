package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// Address represents a user-owned shipping address
type Address struct {
	shared.BaseEntity
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Pincode      string    `gorm:"type:varchar(10);not null"`
	IsDefault    bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new shipping address for a user
func NewAddress(userID uuid.UUID, fullName, phone, line1, line2, city, state, pincode string) (*Address, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	for field, value := range map[string]string{
		"full_name":     fullName,
		"phone":         phone,
		"address_line1": line1,
		"city":          city,
		"state":         state,
		"pincode":       pincode,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, shared.NewDomainError("INVALID_ADDRESS", field+" is required")
		}
	}

	return &Address{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		FullName:     fullName,
		Phone:        phone,
		AddressLine1: line1,
		AddressLine2: line2,
		City:         city,
		State:        state,
		Pincode:      pincode,
	}, nil
}

// Update updates the address fields
func (a *Address) Update(fullName, phone, line1, line2, city, state, pincode string) error {
	for field, value := range map[string]string{
		"full_name":     fullName,
		"phone":         phone,
		"address_line1": line1,
		"city":          city,
		"state":         state,
		"pincode":       pincode,
	} {
		if strings.TrimSpace(value) == "" {
			return shared.NewDomainError("INVALID_ADDRESS", field+" is required")
		}
	}
	a.FullName = fullName
	a.Phone = phone
	a.AddressLine1 = line1
	a.AddressLine2 = line2
	a.City = city
	a.State = state
	a.Pincode = pincode
	a.UpdatedAt = time.Now()
	return nil
}

// MarkDefault flags this address as the user's default
func (a *Address) MarkDefault() {
	a.IsDefault = true
	a.UpdatedAt = time.Now()
}

// ClearDefault removes the default flag
func (a *Address) ClearDefault() {
	a.IsDefault = false
	a.UpdatedAt = time.Now()
}

// BelongsTo returns true if the address is owned by the given user
func (a *Address) BelongsTo(userID uuid.UUID) bool {
	return a.UserID == userID
}

package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/identity"
)

// RegisterRequest creates a new customer account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest updates the caller's profile
type UpdateProfileRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
}

// ChangePasswordRequest changes the caller's password
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthResult is returned from register, login and refresh
type AuthResult struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	User                  UserResponse `json:"user"`
}

// CreateUserRequest provisions an account from the admin surface
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

// UpdateUserRequest edits an account from the admin surface
type UpdateUserRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
}

// UserListFilter narrows admin user listings
type UserListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// AddressRequest creates or updates a delivery address
type AddressRequest struct {
	FullName     string `json:"full_name" binding:"required,min=1,max=100"`
	Phone        string `json:"phone" binding:"required,min=6,max=20"`
	AddressLine1 string `json:"address_line1" binding:"required,min=1,max=200"`
	AddressLine2 string `json:"address_line2" binding:"omitempty,max=200"`
	City         string `json:"city" binding:"required,min=1,max=100"`
	State        string `json:"state" binding:"required,min=1,max=100"`
	Pincode      string `json:"pincode" binding:"required,min=4,max=10"`
	IsDefault    bool   `json:"is_default"`
}

// AddressResponse represents a delivery address in API responses
type AddressResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUserResponse converts a domain user to its API shape
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAddressResponse converts a domain address to its API shape
func ToAddressResponse(a *identity.Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		FullName:     a.FullName,
		Phone:        a.Phone,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
		IsDefault:    a.IsDefault,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAddressResponses converts addresses to their API shape
func ToAddressResponses(addresses []*identity.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, ToAddressResponse(a))
	}
	return out
}

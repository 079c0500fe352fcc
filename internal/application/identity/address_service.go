package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/identity"
)

// AddressService manages a user's delivery addresses
type AddressService struct {
	addressRepo identity.AddressRepository
}

// NewAddressService creates an address service
func NewAddressService(addressRepo identity.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// List returns the caller's addresses, default first
func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(addresses), nil
}

// Get returns one of the caller's addresses
func (s *AddressService) Get(ctx context.Context, userID, addressID uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindOwned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	resp := ToAddressResponse(address)
	return &resp, nil
}

// Create adds a new address for the caller
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	address, err := identity.NewAddress(userID, req.FullName, req.Phone,
		req.AddressLine1, req.AddressLine2, req.City, req.State, req.Pincode)
	if err != nil {
		return nil, err
	}

	if req.IsDefault {
		if err := s.addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
			return nil, err
		}
		address.MarkDefault()
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}
	resp := ToAddressResponse(address)
	return &resp, nil
}

// Update modifies one of the caller's addresses
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindOwned(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.FullName, req.Phone,
		req.AddressLine1, req.AddressLine2, req.City, req.State, req.Pincode); err != nil {
		return nil, err
	}

	if req.IsDefault && !address.IsDefault {
		if err := s.addressRepo.ClearDefaultForUser(ctx, userID); err != nil {
			return nil, err
		}
		address.MarkDefault()
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}
	resp := ToAddressResponse(address)
	return &resp, nil
}

// Delete removes one of the caller's addresses
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.addressRepo.FindOwned(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address.ID)
}

package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*User, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines persistence operations for addresses
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	// FindOwned returns the address only when it belongs to the given user;
	// otherwise shared.ErrNotFound.
	FindOwned(ctx context.Context, userID, addressID uuid.UUID) (*Address, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Address, error)
	ClearDefaultForUser(ctx context.Context, userID uuid.UUID) error
	Save(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id uuid.UUID) error
}

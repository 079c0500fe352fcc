package checkout

import (
	"github.com/google/uuid"
)

// CheckoutRequest places an order from the caller's current cart
type CheckoutRequest struct {
	AddressID     uuid.UUID `json:"address_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=card upi cod"`

	CardNumber      string `json:"card_number,omitempty"`
	CardHolderName  string `json:"card_holder_name,omitempty"`
	CardExpiryMonth string `json:"card_expiry_month,omitempty"`
	CardExpiryYear  string `json:"card_expiry_year,omitempty"`

	UPIID   string `json:"upi_id,omitempty"`
	UPIName string `json:"upi_name,omitempty"`
}

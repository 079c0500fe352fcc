package order

import (
	"strings"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/shared"
)

// PaymentDetail captures the instrument used to pay for an order. Card
// numbers are never stored in full; only the last four digits survive.
type PaymentDetail struct {
	shared.BaseEntity
	OrderID         uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	Method          PaymentMethod `gorm:"column:payment_method;type:varchar(10);not null"`
	CardNumberLast4 string        `gorm:"type:varchar(4)"`
	CardHolderName  string        `gorm:"type:varchar(100)"`
	CardExpiryMonth string        `gorm:"type:varchar(2)"`
	CardExpiryYear  string        `gorm:"type:varchar(4)"`
	UPIID           string        `gorm:"type:varchar(100)"`
	UPIName         string        `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (PaymentDetail) TableName() string {
	return "payment_details"
}

// NewCardPayment masks the card number down to its last four digits
func NewCardPayment(cardNumber, holderName, expiryMonth, expiryYear string) (*PaymentDetail, error) {
	digits := strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(digits) < 4 {
		return nil, shared.NewDomainError("INVALID_CARD", "Card number is too short")
	}
	return &PaymentDetail{
		BaseEntity:      shared.NewBaseEntity(),
		Method:          PaymentCard,
		CardNumberLast4: digits[len(digits)-4:],
		CardHolderName:  holderName,
		CardExpiryMonth: expiryMonth,
		CardExpiryYear:  expiryYear,
	}, nil
}

// NewUPIPayment records a UPI instrument
func NewUPIPayment(upiID, upiName string) (*PaymentDetail, error) {
	if strings.TrimSpace(upiID) == "" {
		return nil, shared.NewDomainError("INVALID_UPI", "UPI ID is required")
	}
	return &PaymentDetail{
		BaseEntity: shared.NewBaseEntity(),
		Method:     PaymentUPI,
		UPIID:      upiID,
		UPIName:    upiName,
	}, nil
}

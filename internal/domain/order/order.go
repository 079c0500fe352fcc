package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/truaxis/storefront/internal/domain/catalog"
	"github.com/truaxis/storefront/internal/domain/identity"
	"github.com/truaxis/storefront/internal/domain/shared"
	"github.com/truaxis/storefront/internal/domain/shared/valueobject"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks if transitioning to the target status is allowed
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentCOD:
		return true
	}
	return false
}

// PaymentStatus tracks whether money has been collected
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Order is the fulfillment aggregate created at checkout. Items carry
// prices frozen at purchase time; later catalog edits do not touch them.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber   string            `gorm:"type:varchar(30);not null;uniqueIndex"`
	ReceiptNumber string            `gorm:"type:varchar(20);not null;uniqueIndex"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	AddressID     uuid.UUID         `gorm:"type:uuid;not null"`
	Address       *identity.Address `gorm:"foreignKey:AddressID"`
	Status        OrderStatus       `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(10);not null"`
	PaymentStatus PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount   decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	Items         []OrderItem       `gorm:"foreignKey:OrderID"`
	Payment       *PaymentDetail    `gorm:"foreignKey:OrderID"`
	CancelledAt   *time.Time
	DeliveredAt   *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one purchased product line with the price frozen at checkout
type OrderItem struct {
	shared.BaseEntity
	OrderID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID        `gorm:"type:uuid;not null"`
	Product      *catalog.Product `gorm:"foreignKey:ProductID"`
	ProductTitle string           `gorm:"type:varchar(200);not null"`
	UnitPrice    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Quantity     int              `gorm:"not null"`
	Size         string           `gorm:"type:varchar(20)"`
	Color        string           `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns unit price times quantity
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder assembles an order from checkout lines. The order is confirmed
// immediately; card and UPI payments are recorded as completed, cash on
// delivery stays pending until the courier collects.
func NewOrder(userID, addressID uuid.UUID, method PaymentMethod, items []OrderItem) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have a customer")
	}
	if addressID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have a delivery address")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if len(items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be at least 1")
		}
		total = total.Add(items[i].LineTotal())
	}

	paymentStatus := PaymentStatusCompleted
	if method == PaymentCOD {
		paymentStatus = PaymentStatusPending
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		AddressID:         addressID,
		Status:            StatusConfirmed,
		PaymentMethod:     method,
		PaymentStatus:     paymentStatus,
		TotalAmount:       total,
		Items:             items,
	}, nil
}

// AssignNumbers sets the public identifiers and stamps item order IDs
func (o *Order) AssignNumbers(orderNumber, receiptNumber string) {
	o.OrderNumber = orderNumber
	o.ReceiptNumber = receiptNumber
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	if o.Payment != nil {
		o.Payment.OrderID = o.ID
	}
}

// AttachPayment links the captured payment instrument detail
func (o *Order) AttachPayment(detail *PaymentDetail) {
	detail.OrderID = o.ID
	o.Payment = detail
}

// Total returns the order total as money
func (o *Order) Total() valueobject.Money {
	return valueobject.NewMoneyINR(o.TotalAmount)
}

// BelongsTo reports whether the order is owned by the given user
func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.UserID == userID
}

// CanCancel reports whether the customer may still cancel
func (o *Order) CanCancel() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}

// Cancel cancels the order. Completed card and UPI payments flip to
// refunded; reserved stock is returned by the caller in the same
// transaction.
func (o *Order) Cancel() error {
	if !o.CanCancel() {
		return shared.NewDomainError("INVALID_STATE",
			"Order can only be cancelled while pending or confirmed")
	}
	now := time.Now()
	o.Status = StatusCancelled
	o.CancelledAt = &now
	if o.PaymentStatus == PaymentStatusCompleted {
		o.PaymentStatus = PaymentStatusRefunded
	}
	o.UpdatedAt = now
	return nil
}

// TransitionTo moves the order to the target status, enforcing the
// lifecycle. Delivery stamps the delivered time and settles cash on
// delivery payments.
func (o *Order) TransitionTo(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if target == StatusCancelled {
		return o.Cancel()
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move order from "+string(o.Status)+" to "+string(target))
	}
	now := time.Now()
	o.Status = target
	if target == StatusDelivered {
		o.DeliveredAt = &now
		if o.PaymentMethod == PaymentCOD {
			o.PaymentStatus = PaymentStatusCompleted
		}
	}
	o.UpdatedAt = now
	return nil
}

package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/truaxis/storefront/internal/domain/order"
)

// OrderListFilter represents filter options for order listings
type OrderListFilter struct {
	Status   *order.OrderStatus `form:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	From     *time.Time         `form:"from"`
	To       *time.Time         `form:"to"`
	Page     int                `form:"page" binding:"omitempty,min=1"`
	PageSize int                `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SetStatusRequest represents an admin request to move an order along
// its lifecycle
type SetStatusRequest struct {
	Status order.OrderStatus `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// OrderItemResponse represents one purchased line in API responses
type OrderItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductTitle string          `json:"product_title"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size,omitempty"`
	Color        string          `json:"color,omitempty"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// PaymentDetailResponse exposes the masked payment instrument
type PaymentDetailResponse struct {
	Method          string `json:"method"`
	CardNumberLast4 string `json:"card_number_last4,omitempty"`
	CardHolderName  string `json:"card_holder_name,omitempty"`
	UPIID           string `json:"upi_id,omitempty"`
	UPIName         string `json:"upi_name,omitempty"`
}

// AddressResponse is the delivery address snapshot on an order
type AddressResponse struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID              `json:"id"`
	OrderNumber   string                 `json:"order_number"`
	ReceiptNumber string                 `json:"receipt_number"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"payment_method"`
	PaymentStatus string                 `json:"payment_status"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Items         []OrderItemResponse    `json:"items"`
	Payment       *PaymentDetailResponse `json:"payment,omitempty"`
	Address       *AddressResponse       `json:"address,omitempty"`
	CancelledAt   *time.Time             `json:"cancelled_at,omitempty"`
	DeliveredAt   *time.Time             `json:"delivered_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// OrderListItemResponse represents an order in list responses
type OrderListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReceiptResponse is the printable receipt projection of an order:
// the order, its lines, the masked payment instrument, the delivery
// address snapshot and the customer contact block.
type ReceiptResponse struct {
	ReceiptNumber string                 `json:"receipt_number"`
	OrderNumber   string                 `json:"order_number"`
	IssuedAt      time.Time              `json:"issued_at"`
	StoreName     string                 `json:"store_name"`
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email,omitempty"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	Items         []OrderItemResponse    `json:"items"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Currency      string                 `json:"currency"`
	PaymentMethod string                 `json:"payment_method"`
	PaymentStatus string                 `json:"payment_status"`
	Payment       *PaymentDetailResponse `json:"payment,omitempty"`
	Address       *AddressResponse       `json:"address,omitempty"`
}

// ToOrderItemResponse converts a domain order item to its API shape
func ToOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductTitle: item.ProductTitle,
		UnitPrice:    item.UnitPrice,
		Quantity:     item.Quantity,
		Size:         item.Size,
		Color:        item.Color,
		LineTotal:    item.LineTotal(),
	}
}

// ToPaymentDetailResponse converts a payment instrument to its API
// shape, carrying only the masked residue
func ToPaymentDetailResponse(p *order.PaymentDetail) *PaymentDetailResponse {
	return &PaymentDetailResponse{
		Method:          string(p.Method),
		CardNumberLast4: p.CardNumberLast4,
		CardHolderName:  p.CardHolderName,
		UPIID:           p.UPIID,
		UPIName:         p.UPIName,
	}
}

// ToOrderResponse converts a domain order to its API shape
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, ToOrderItemResponse(&o.Items[i]))
	}

	resp := OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		ReceiptNumber: o.ReceiptNumber,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		TotalAmount:   o.TotalAmount,
		Items:         items,
		CancelledAt:   o.CancelledAt,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
	}
	if o.Payment != nil {
		resp.Payment = ToPaymentDetailResponse(o.Payment)
	}
	if o.Address != nil {
		resp.Address = &AddressResponse{
			FullName:     o.Address.FullName,
			Phone:        o.Address.Phone,
			AddressLine1: o.Address.AddressLine1,
			AddressLine2: o.Address.AddressLine2,
			City:         o.Address.City,
			State:        o.Address.State,
			Pincode:      o.Address.Pincode,
		}
	}
	return resp
}

// ToOrderListItemResponses converts orders to their list shape
func ToOrderListItemResponses(orders []*order.Order) []OrderListItemResponse {
	out := make([]OrderListItemResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderListItemResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			Status:        string(o.Status),
			PaymentMethod: string(o.PaymentMethod),
			PaymentStatus: string(o.PaymentStatus),
			TotalAmount:   o.TotalAmount,
			ItemCount:     len(o.Items),
			CreatedAt:     o.CreatedAt,
		})
	}
	return out
}

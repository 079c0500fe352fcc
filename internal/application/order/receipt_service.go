package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// ReceiptService projects orders into printable receipts
type ReceiptService struct {
	repo      order.Repository
	userRepo  CustomerLookup
	storeName string
}

// CustomerLookup resolves the customer contact block shown on a receipt
type CustomerLookup interface {
	ContactByID(ctx context.Context, id uuid.UUID) (name, email, phone string, err error)
}

// NewReceiptService creates a receipt service
func NewReceiptService(repo order.Repository, userRepo CustomerLookup, storeName string) *ReceiptService {
	return &ReceiptService{
		repo:      repo,
		userRepo:  userRepo,
		storeName: storeName,
	}
}

// GetForUser returns the receipt for one of the caller's orders
func (s *ReceiptService) GetForUser(ctx context.Context, userID, orderID uuid.UUID) (*ReceiptResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(userID) {
		return nil, shared.ErrNotFound
	}
	return s.project(ctx, o)
}

// Get returns the receipt for any order, regardless of owner
func (s *ReceiptService) Get(ctx context.Context, orderID uuid.UUID) (*ReceiptResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.project(ctx, o)
}

func (s *ReceiptService) project(ctx context.Context, o *order.Order) (*ReceiptResponse, error) {
	var customerName, customerEmail, customerPhone string
	if s.userRepo != nil {
		name, email, phone, err := s.userRepo.ContactByID(ctx, o.UserID)
		if err == nil {
			customerName = name
			customerEmail = email
			customerPhone = phone
		}
	}

	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, ToOrderItemResponse(&o.Items[i]))
	}

	total := o.Total()
	resp := &ReceiptResponse{
		ReceiptNumber: o.ReceiptNumber,
		OrderNumber:   o.OrderNumber,
		IssuedAt:      o.CreatedAt,
		StoreName:     s.storeName,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone,
		Items:         items,
		TotalAmount:   total.Amount(),
		Currency:      string(total.Currency()),
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
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
	return resp, nil
}

package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apporder "github.com/truaxis/storefront/internal/application/order"
	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// maxNumberAttempts bounds retries when a generated order or receipt
// number collides with an existing one.
const maxNumberAttempts = 5

// Service turns a user's cart into a confirmed order. The whole
// operation runs in one transaction: stock reservation, order rows,
// payment detail and cart drain commit together or not at all.
type Service struct {
	scope   TransactionScope
	numbers *order.NumberGenerator
	logger  *zap.Logger
}

// NewService creates a checkout service
func NewService(scope TransactionScope, numbers *order.NumberGenerator, logger *zap.Logger) *Service {
	return &Service{
		scope:   scope,
		numbers: numbers,
		logger:  logger,
	}
}

// Checkout places an order from the user's cart. Inactive and deleted
// products are skipped rather than failing the whole purchase; a cart
// left with nothing sellable is treated as empty. Stock is reserved
// with conditional decrements, so concurrent checkouts of the last
// units cannot both succeed.
func (s *Service) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*apporder.OrderResponse, error) {
	method := order.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	payment, err := buildPaymentDetail(method, req)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		address, err := repos.Addresses().FindOwned(ctx, userID, req.AddressID)
		if err != nil {
			return err
		}

		cartLines, err := repos.Carts().FindByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartLines) == 0 {
			return shared.ErrEmptyCart
		}

		items := make([]order.OrderItem, 0, len(cartLines))
		for _, line := range cartLines {
			product, err := repos.Products().FindByID(ctx, line.ProductID)
			if errors.Is(err, shared.ErrNotFound) {
				s.logger.Debug("skipping cart line for missing product",
					zap.String("product_id", line.ProductID.String()))
				continue
			}
			if err != nil {
				return err
			}
			if !product.IsSellable() {
				s.logger.Debug("skipping cart line for inactive product",
					zap.String("product_id", product.ID.String()))
				continue
			}

			if err := repos.Stock().Reserve(ctx, product.ID, line.Quantity); err != nil {
				if errors.Is(err, shared.ErrInsufficientStock) {
					return shared.NewDomainError("INSUFFICIENT_STOCK",
						"Not enough stock for "+product.Title)
				}
				return err
			}

			items = append(items, order.OrderItem{
				BaseEntity:   shared.NewBaseEntity(),
				ProductID:    product.ID,
				ProductTitle: product.Title,
				UnitPrice:    product.UnitPrice().Amount(),
				Quantity:     line.Quantity,
				Size:         line.Size,
				Color:        line.Color,
			})
		}

		o, err := order.NewOrder(userID, address.ID, method, items)
		if err != nil {
			return err
		}
		if payment != nil {
			o.AttachPayment(payment)
		}

		orderNumber, receiptNumber, err := s.uniqueNumbers(ctx, repos.Orders())
		if err != nil {
			return err
		}
		o.AssignNumbers(orderNumber, receiptNumber)

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}
		if err := repos.Carts().DeleteByUser(ctx, userID); err != nil {
			return err
		}

		o.Address = address
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_number", placed.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.String("total", placed.TotalAmount.String()))

	resp := apporder.ToOrderResponse(placed)
	return &resp, nil
}

// uniqueNumbers generates order and receipt numbers, retrying on a
// collision with stored orders. The unique indexes on both columns
// remain the final arbiter.
func (s *Service) uniqueNumbers(ctx context.Context, repo order.Repository) (string, string, error) {
	var orderNumber, receiptNumber string

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n, err := s.numbers.OrderNumber()
		if err != nil {
			return "", "", err
		}
		exists, err := repo.ExistsByOrderNumber(ctx, n)
		if err != nil {
			return "", "", err
		}
		if !exists {
			orderNumber = n
			break
		}
	}
	if orderNumber == "" {
		return "", "", shared.NewDomainError("NUMBER_EXHAUSTED", "Could not allocate a unique order number")
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		n, err := s.numbers.ReceiptNumber()
		if err != nil {
			return "", "", err
		}
		exists, err := repo.ExistsByReceiptNumber(ctx, n)
		if err != nil {
			return "", "", err
		}
		if !exists {
			receiptNumber = n
			break
		}
	}
	if receiptNumber == "" {
		return "", "", shared.NewDomainError("NUMBER_EXHAUSTED", "Could not allocate a unique receipt number")
	}

	return orderNumber, receiptNumber, nil
}

func buildPaymentDetail(method order.PaymentMethod, req CheckoutRequest) (*order.PaymentDetail, error) {
	switch method {
	case order.PaymentCard:
		return order.NewCardPayment(req.CardNumber, req.CardHolderName, req.CardExpiryMonth, req.CardExpiryYear)
	case order.PaymentUPI:
		return order.NewUPIPayment(req.UPIID, req.UPIName)
	default:
		return nil, nil
	}
}

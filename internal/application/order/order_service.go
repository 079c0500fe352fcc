package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

// Service handles order lifecycle operations after checkout
type Service struct {
	repo   order.Repository
	scope  TransactionScope
	logger *zap.Logger
}

// NewService creates an order service
func NewService(repo order.Repository, scope TransactionScope, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		scope:  scope,
		logger: logger,
	}
}

func buildDomainFilter(filter OrderListFilter) order.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	f := order.Filter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  "created_at",
			OrderDir: "desc",
		},
		Status: filter.Status,
		From:   filter.From,
		To:     filter.To,
	}
	return f
}

// ListForUser returns the caller's orders, newest first
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, filter OrderListFilter) ([]OrderListItemResponse, int64, error) {
	f := buildDomainFilter(filter)
	orders, err := s.repo.FindByUser(ctx, userID, f)
	if err != nil {
		return nil, 0, err
	}
	f.Filters = map[string]interface{}{"user_id": userID}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderListItemResponses(orders), total, nil
}

// GetForUser returns one of the caller's orders. Orders belonging to
// other users are reported as not found, never as forbidden.
func (s *Service) GetForUser(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(userID) {
		return nil, shared.ErrNotFound
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Cancel cancels one of the caller's orders and returns its reserved
// stock, all in one transaction.
func (s *Service) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	var cancelled *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.BelongsTo(userID) {
			return shared.ErrNotFound
		}
		if err := o.Cancel(); err != nil {
			return err
		}
		for i := range o.Items {
			if err := repos.Stock().Release(ctx, o.Items[i].ProductID, o.Items[i].Quantity); err != nil {
				return err
			}
		}
		if err := repos.Orders().SaveWithLock(ctx, o); err != nil {
			return err
		}
		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled",
		zap.String("order_number", cancelled.OrderNumber),
		zap.String("user_id", userID.String()))

	resp := ToOrderResponse(cancelled)
	return &resp, nil
}

// ListAll returns every order, for the admin dashboard
func (s *Service) ListAll(ctx context.Context, filter OrderListFilter) ([]OrderListItemResponse, int64, error) {
	f := buildDomainFilter(filter)
	orders, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderListItemResponses(orders), total, nil
}

// GetByID returns any order by ID, for admins
func (s *Service) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// SetStatus moves an order along its lifecycle on behalf of an admin.
// The same transition rules apply as for customers; moving to cancelled
// also returns reserved stock.
func (s *Service) SetStatus(ctx context.Context, orderID uuid.UUID, target order.OrderStatus) (*OrderResponse, error) {
	var updated *order.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		wasActive := o.Status != order.StatusCancelled
		if err := o.TransitionTo(target); err != nil {
			return err
		}
		if target == order.StatusCancelled && wasActive {
			for i := range o.Items {
				if err := repos.Stock().Release(ctx, o.Items[i].ProductID, o.Items[i].Quantity); err != nil {
					return err
				}
			}
		}
		if err := repos.Orders().SaveWithLock(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status changed",
		zap.String("order_number", updated.OrderNumber),
		zap.String("status", string(updated.Status)))

	resp := ToOrderResponse(updated)
	return &resp, nil
}

// Stats returns the aggregate order summary for the admin dashboard
func (s *Service) Stats(ctx context.Context) (*order.Stats, error) {
	return s.repo.Stats(ctx)
}

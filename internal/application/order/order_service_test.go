package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/truaxis/storefront/internal/domain/order"
	"github.com/truaxis/storefront/internal/domain/shared"
)

type orderFixture struct {
	repo    *MockOrderRepository
	stock   *MockStockLedger
	service *Service
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		repo:  new(MockOrderRepository),
		stock: new(MockStockLedger),
	}
	scope := &NoOpTransactionScope{OrderRepo: f.repo, StockLedger: f.stock}
	f.service = NewService(f.repo, scope, zap.NewNop())
	return f
}

func placedOrder(t *testing.T, userID uuid.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()
	items := []order.OrderItem{
		{ProductID: uuid.New(), ProductTitle: "Classic Tee", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		{ProductID: uuid.New(), ProductTitle: "Baseball Cap", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
	}
	o, err := order.NewOrder(userID, uuid.New(), method, items)
	require.NoError(t, err)
	o.AssignNumbers("ORD-20260830120000-AB12", "RCPAB12CD34")
	return o
}

func TestOrderServiceCancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cancels a confirmed order and returns stock", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.stock.On("Release", ctx, o.Items[0].ProductID, 2).Return(nil)
		f.stock.On("Release", ctx, o.Items[1].ProductID, 1).Return(nil)
		f.repo.On("SaveWithLock", ctx, o).Return(nil)

		resp, err := f.service.Cancel(ctx, userID, o.ID)
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		f.stock.AssertExpectations(t)
		f.repo.AssertCalled(t, "SaveWithLock", ctx, o)
	})

	t.Run("refuses to cancel a shipped order", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)
		require.NoError(t, o.TransitionTo(order.StatusShipped))

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.Cancel(ctx, userID, o.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)

		f.stock.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("hides other users' orders", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, uuid.New(), order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.Cancel(ctx, userID, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refunds a completed card payment", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCard)
		require.Equal(t, order.PaymentStatusCompleted, o.PaymentStatus)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.stock.On("Release", ctx, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("SaveWithLock", ctx, o).Return(nil)

		resp, err := f.service.Cancel(ctx, userID, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "refunded", resp.PaymentStatus)
	})
}

func TestOrderServiceSetStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("advances confirmed to shipped", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.repo.On("SaveWithLock", ctx, o).Return(nil)

		resp, err := f.service.SetStatus(ctx, o.ID, order.StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, "shipped", resp.Status)
		f.stock.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delivering settles cod payment", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)
		require.NoError(t, o.TransitionTo(order.StatusShipped))

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.repo.On("SaveWithLock", ctx, o).Return(nil)

		resp, err := f.service.SetStatus(ctx, o.ID, order.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, "delivered", resp.Status)
		assert.Equal(t, "completed", resp.PaymentStatus)
		assert.NotNil(t, resp.DeliveredAt)
	})

	t.Run("rejects skipping shipment", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.SetStatus(ctx, o.ID, order.StatusDelivered)
		require.Error(t, err)
		f.repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("cancelling via status change releases stock", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)
		f.stock.On("Release", ctx, o.Items[0].ProductID, 2).Return(nil)
		f.stock.On("Release", ctx, o.Items[1].ProductID, 1).Return(nil)
		f.repo.On("SaveWithLock", ctx, o).Return(nil)

		resp, err := f.service.SetStatus(ctx, o.ID, order.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		f.stock.AssertExpectations(t)
	})

	t.Run("delivered orders are terminal", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, userID, order.PaymentCOD)
		require.NoError(t, o.TransitionTo(order.StatusShipped))
		require.NoError(t, o.TransitionTo(order.StatusDelivered))

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.SetStatus(ctx, o.ID, order.StatusCancelled)
		require.Error(t, err)
	})
}

func TestOrderServiceQueries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("lists own orders with total", func(t *testing.T) {
		f := newOrderFixture()
		orders := []*order.Order{placedOrder(t, userID, order.PaymentCOD)}

		f.repo.On("FindByUser", ctx, userID, mock.AnythingOfType("order.Filter")).Return(orders, nil)
		f.repo.On("Count", ctx, mock.AnythingOfType("order.Filter")).Return(int64(1), nil)

		list, total, err := f.service.ListForUser(ctx, userID, OrderListFilter{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "ORD-20260830120000-AB12", list[0].OrderNumber)
	})

	t.Run("get for user enforces ownership", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, uuid.New(), order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.service.GetForUser(ctx, userID, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("admin get returns any order", func(t *testing.T) {
		f := newOrderFixture()
		o := placedOrder(t, uuid.New(), order.PaymentCOD)

		f.repo.On("FindByID", ctx, o.ID).Return(o, nil)

		resp, err := f.service.GetByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, o.OrderNumber, resp.OrderNumber)
	})
}

func TestReceiptService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("builds receipt with store and customer contact", func(t *testing.T) {
		repo := new(MockOrderRepository)
		users := new(MockCustomerLookup)
		svc := NewReceiptService(repo, users, "TruAxis")
		o := placedOrder(t, userID, order.PaymentCOD)

		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		users.On("ContactByID", ctx, userID).Return("Priya Sharma", "priya@example.com", "9876543210", nil)

		receipt, err := svc.GetForUser(ctx, userID, o.ID)
		require.NoError(t, err)

		assert.Equal(t, "RCPAB12CD34", receipt.ReceiptNumber)
		assert.Equal(t, "TruAxis", receipt.StoreName)
		assert.Equal(t, "Priya Sharma", receipt.CustomerName)
		assert.Equal(t, "priya@example.com", receipt.CustomerEmail)
		assert.Equal(t, "9876543210", receipt.CustomerPhone)
		assert.Equal(t, "INR", receipt.Currency)
		assert.Len(t, receipt.Items, 2)
		assert.True(t, receipt.TotalAmount.Equal(decimal.NewFromInt(250)))
	})

	t.Run("card receipts carry the masked instrument", func(t *testing.T) {
		repo := new(MockOrderRepository)
		users := new(MockCustomerLookup)
		svc := NewReceiptService(repo, users, "TruAxis")
		o := placedOrder(t, userID, order.PaymentCard)
		detail, err := order.NewCardPayment("4111 1111 1111 1234", "Priya Sharma", "09", "2028")
		require.NoError(t, err)
		o.AttachPayment(detail)

		repo.On("FindByID", ctx, o.ID).Return(o, nil)
		users.On("ContactByID", ctx, userID).Return("Priya Sharma", "priya@example.com", "", nil)

		receipt, err := svc.GetForUser(ctx, userID, o.ID)
		require.NoError(t, err)

		require.NotNil(t, receipt.Payment)
		assert.Equal(t, "card", receipt.Payment.Method)
		assert.Equal(t, "1234", receipt.Payment.CardNumberLast4)
		assert.Equal(t, "Priya Sharma", receipt.Payment.CardHolderName)
		assert.Empty(t, receipt.Payment.UPIID)
	})

	t.Run("hides other users' receipts", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewReceiptService(repo, nil, "TruAxis")
		o := placedOrder(t, uuid.New(), order.PaymentCOD)

		repo.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := svc.GetForUser(ctx, userID, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

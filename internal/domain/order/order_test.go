package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truaxis/storefront/internal/domain/shared"
)

func makeItems(lines ...[2]int64) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			BaseEntity:   shared.NewBaseEntity(),
			ProductID:    uuid.New(),
			ProductTitle: "Test Product",
			UnitPrice:    decimal.NewFromInt(l[0]),
			Quantity:     int(l[1]),
		})
	}
	return items
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("creates confirmed order with computed total", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 2}, [2]int64{50, 1}))
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.Equal(t, StatusConfirmed, o.Status)
		assert.Equal(t, PaymentStatusCompleted, o.PaymentStatus)
		assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(250)))
		assert.Len(t, o.Items, 2)
		assert.Equal(t, 1, o.GetVersion())
	})

	t.Run("cod order keeps payment pending", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCOD, makeItems([2]int64{100, 1}))
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
		assert.Equal(t, StatusConfirmed, o.Status)
	})

	t.Run("fails without items", func(t *testing.T) {
		_, err := NewOrder(userID, addressID, PaymentCard, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
	})

	t.Run("fails with unknown payment method", func(t *testing.T) {
		_, err := NewOrder(userID, addressID, PaymentMethod("cheque"), makeItems([2]int64{100, 1}))
		require.Error(t, err)
	})

	t.Run("fails without customer", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.Error(t, err)
	})

	t.Run("fails without address", func(t *testing.T) {
		_, err := NewOrder(userID, uuid.Nil, PaymentCard, makeItems([2]int64{100, 1}))
		require.Error(t, err)
	})

	t.Run("fails with zero quantity line", func(t *testing.T) {
		items := makeItems([2]int64{100, 1})
		items[0].Quantity = 0
		_, err := NewOrder(userID, addressID, PaymentCard, items)
		require.Error(t, err)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusShipped, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, StatusDelivered.IsTerminal())
		assert.True(t, StatusCancelled.IsTerminal())
		assert.False(t, StatusConfirmed.IsTerminal())
	})
}

func TestOrderCancel(t *testing.T) {
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("cancels confirmed order and refunds completed payment", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
		assert.Equal(t, PaymentStatusRefunded, o.PaymentStatus)
		require.NotNil(t, o.CancelledAt)
	})

	t.Run("cancelled cod order stays pending payment", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCOD, makeItems([2]int64{100, 1}))
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	})

	t.Run("cannot cancel shipped order", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.NoError(t, err)
		require.NoError(t, o.TransitionTo(StatusShipped))

		err = o.Cancel()
		require.Error(t, err)
		assert.Equal(t, StatusShipped, o.Status)
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.NoError(t, err)
		require.NoError(t, o.Cancel())
		require.Error(t, o.Cancel())
	})
}

func TestOrderTransitionTo(t *testing.T) {
	userID := uuid.New()
	addressID := uuid.New()

	t.Run("delivery settles cod payment", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCOD, makeItems([2]int64{100, 1}))
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(StatusShipped))
		require.NoError(t, o.TransitionTo(StatusDelivered))

		assert.Equal(t, StatusDelivered, o.Status)
		assert.Equal(t, PaymentStatusCompleted, o.PaymentStatus)
		require.NotNil(t, o.DeliveredAt)
	})

	t.Run("rejects skipping shipped", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.NoError(t, err)
		require.Error(t, o.TransitionTo(StatusDelivered))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o, err := NewOrder(userID, addressID, PaymentCard, makeItems([2]int64{100, 1}))
		require.NoError(t, err)
		require.Error(t, o.TransitionTo(OrderStatus("archived")))
	})
}

func TestOrderAssignNumbers(t *testing.T) {
	o, err := NewOrder(uuid.New(), uuid.New(), PaymentCard, makeItems([2]int64{100, 2}))
	require.NoError(t, err)

	o.AssignNumbers("ORD-20250114153045-X7K2", "RCP8F3K2M1Q")

	assert.Equal(t, "ORD-20250114153045-X7K2", o.OrderNumber)
	assert.Equal(t, "RCP8F3K2M1Q", o.ReceiptNumber)
	for _, item := range o.Items {
		assert.Equal(t, o.ID, item.OrderID)
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.RequireFromString("49.99"),
		Quantity:  3,
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("149.97")))
}

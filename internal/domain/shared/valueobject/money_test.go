package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100.50)
		b := NewMoneyINRFromFloat(49.50)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(150)))
	})

	t.Run("add rejects currency mismatch", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b, err := NewMoney(decimal.NewFromInt(10), USD)
		require.NoError(t, err)
		_, err = a.Add(b)
		require.Error(t, err)
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		price := NewMoneyINRFromFloat(49.99)
		total := price.MultiplyByInt(3)
		assert.True(t, total.Amount().Equal(decimal.RequireFromString("149.97")))
	})

	t.Run("subtract", func(t *testing.T) {
		a := NewMoneyINRFromFloat(100)
		b := NewMoneyINRFromFloat(30)
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(70)))
	})

	t.Run("zero checks", func(t *testing.T) {
		assert.True(t, ZeroINR().IsZero())
		assert.True(t, NewMoneyINRFromFloat(1).IsPositive())
		assert.False(t, NewMoneyINRFromFloat(1).IsZero())
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyINRFromFloat(100)
	b := NewMoneyINRFromFloat(200)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyINRFromFloat(100)))

	usd, err := NewMoney(decimal.NewFromInt(100), USD)
	require.NoError(t, err)
	assert.False(t, a.Equals(usd))
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal string", func(t *testing.T) {
		m, err := NewMoneyINRFromString("1299.00")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(1299)))
		assert.Equal(t, INR, m.Currency())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewMoneyINRFromString("twelve")
		require.Error(t, err)
	})
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyINRFromFloat(1299.50)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))
}

func TestMoneySQL(t *testing.T) {
	t.Run("round trips through driver value", func(t *testing.T) {
		m := NewMoneyINRFromFloat(250)
		v, err := m.Value()
		require.NoError(t, err)

		var back Money
		require.NoError(t, back.Scan(v))
		assert.True(t, back.Amount().Equal(decimal.NewFromInt(250)))
		assert.Equal(t, INR, back.Currency())
	})

	t.Run("scans byte slice", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan([]byte("99.99")))
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("99.99")))
	})
}

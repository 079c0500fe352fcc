package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberGenerator(t *testing.T) {
	t.Run("order number format", func(t *testing.T) {
		g := &NumberGenerator{now: func() time.Time {
			return time.Date(2025, 1, 14, 15, 30, 45, 0, time.UTC)
		}}
		n, err := g.OrderNumber()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^ORD-20250114153045-[A-Z0-9]{4}$`), n)
	})

	t.Run("receipt number format", func(t *testing.T) {
		g := NewNumberGenerator()
		n, err := g.ReceiptNumber()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^RCP[A-Z0-9]{8}$`), n)
	})

	t.Run("receipt numbers do not repeat", func(t *testing.T) {
		g := NewNumberGenerator()
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			n, err := g.ReceiptNumber()
			require.NoError(t, err)
			assert.False(t, seen[n], "duplicate receipt number %s", n)
			seen[n] = true
		}
	})
}

package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NumberGenerator produces the public order and receipt identifiers.
// Uniqueness is verified against storage by the caller; the random
// suffix only keeps collisions rare.
type NumberGenerator struct {
	now func() time.Time
}

// NewNumberGenerator creates a generator using the wall clock
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now}
}

// OrderNumber returns an identifier like ORD-20250114153045-X7K2
func (g *NumberGenerator) OrderNumber() (string, error) {
	suffix, err := randomString(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate order number: %w", err)
	}
	return fmt.Sprintf("ORD-%s-%s", g.now().Format("20060102150405"), suffix), nil
}

// ReceiptNumber returns an identifier like RCP8F3K2M1Q
func (g *NumberGenerator) ReceiptNumber() (string, error) {
	suffix, err := randomString(8)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt number: %w", err)
	}
	return "RCP" + suffix, nil
}

func randomString(n int) (string, error) {
	max := big.NewInt(int64(len(numberAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = numberAlphabet[idx.Int64()]
	}
	return string(b), nil
}

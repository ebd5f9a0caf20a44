package utils

import (
	"math/rand"
	"strings"
)

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewToken returns a short random alphanumeric id for catalog rows.
// Not collision-resistant on its own; callers that need uniqueness
// retry on conflict.
func NewToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}

// NewOrderID is the customer-visible order number, e.g. "K7A2QX".
func NewOrderID() string {
	return strings.ToUpper(NewToken(6))
}

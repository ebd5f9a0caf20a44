package utils

import (
	"strings"
	"testing"
)

func TestNewToken(t *testing.T) {
	tok := NewToken(6)
	if len(tok) != 6 {
		t.Fatalf("expected length 6, got %d", len(tok))
	}
	for _, r := range tok {
		if !strings.ContainsRune(tokenAlphabet, r) {
			t.Errorf("unexpected character %q", r)
		}
	}
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()
	if len(id) != 6 {
		t.Fatalf("expected length 6, got %d", len(id))
	}
	if id != strings.ToUpper(id) {
		t.Errorf("order id not uppercase: %q", id)
	}
}

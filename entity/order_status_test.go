package entity

import "testing"

func TestOrderStatusIndex(t *testing.T) {
	cases := []struct {
		status OrderStatus
		index  int
	}{
		{StatusPending, 0},
		{StatusAccepted, 1},
		{StatusDelivering, 2},
		{StatusCompleted, 3},
		{"BOGUS", -1},
	}
	for _, tc := range cases {
		if got := tc.status.Index(); got != tc.index {
			t.Errorf("%s: expected index %d, got %d", tc.status, tc.index, got)
		}
	}
}

func TestOrderStatusProgress(t *testing.T) {
	// The tracker bar: index / (steps - 1).
	if got := StatusDelivering.Progress(); got != 2.0/3.0 {
		t.Errorf("DELIVERING progress: expected 2/3, got %v", got)
	}
	if got := StatusPending.Progress(); got != 0 {
		t.Errorf("PENDING progress: expected 0, got %v", got)
	}
	if got := StatusCompleted.Progress(); got != 1 {
		t.Errorf("COMPLETED progress: expected 1, got %v", got)
	}
}

func TestEarlierStatuses(t *testing.T) {
	got := StatusDelivering.EarlierStatuses()
	if len(got) != 2 || got[0] != StatusPending || got[1] != StatusAccepted {
		t.Errorf("unexpected earlier set for DELIVERING: %v", got)
	}
	if got := StatusPending.EarlierStatuses(); len(got) != 0 {
		t.Errorf("PENDING has no earlier statuses, got %v", got)
	}
}

func TestStockStatusToggle(t *testing.T) {
	if InStock.Toggle() != OutOfStock {
		t.Error("IN_STOCK should toggle to OUT_OF_STOCK")
	}
	// Two toggles are a no-op.
	if InStock.Toggle().Toggle() != InStock {
		t.Error("double toggle should round-trip")
	}
}

func TestOrderTypeValid(t *testing.T) {
	if !OrderDelivery.Valid() || !OrderReservation.Valid() {
		t.Error("known types reported invalid")
	}
	if OrderType("pickup").Valid() {
		t.Error("unknown type reported valid")
	}
}

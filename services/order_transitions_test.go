package services

import (
	"errors"
	"testing"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
)

// newPlacedDelivery puts the seeded "p1" product in the client's cart
// and checks out a delivery order.
func newPlacedDelivery(t *testing.T, svc *OrderService, cartSvc *CartService, clientID string) *entity.Order {
	t.Helper()
	if _, err := cartSvc.Add(clientID, &AddToCartIn{ProductID: "p1"}); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	order, err := svc.Place(clientID, &PlaceOrderReq{
		Type:         entity.OrderDelivery,
		CustomerName: "Aziz",
		Phone:        "998901234567",
		Address:      "Toshkent",
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	return order
}

func TestCourierAdvance_Forward(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	rec := &eventRecorder{}
	svc := newOrderService(db, rec)

	order := newPlacedDelivery(t, svc, cartSvc, "client1")

	if err := svc.CourierAdvance(order.ID, entity.StatusDelivering); err != nil {
		t.Fatalf("advance to DELIVERING: %v", err)
	}
	got, _ := svc.Get(order.ID)
	if got.Status != entity.StatusDelivering {
		t.Fatalf("expected DELIVERING, got %s", got.Status)
	}

	if err := svc.CourierAdvance(order.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("advance to COMPLETED: %v", err)
	}
	got, _ = svc.Get(order.ID)
	if got.Status != entity.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got.Status)
	}
}

func TestCourierAdvance_SkipStraightToCompleted(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	svc := newOrderService(db, nil)

	order := newPlacedDelivery(t, svc, cartSvc, "client1")

	// The courier panel can close a handed-over order directly.
	if err := svc.CourierAdvance(order.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("skip to COMPLETED: %v", err)
	}
	got, _ := svc.Get(order.ID)
	if got.Status != entity.StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got.Status)
	}
}

func TestCourierAdvance_NoRegression(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	svc := newOrderService(db, nil)

	order := newPlacedDelivery(t, svc, cartSvc, "client1")

	if err := svc.CourierAdvance(order.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// COMPLETED is terminal; moving "back" to DELIVERING must fail.
	err := svc.CourierAdvance(order.ID, entity.StatusDelivering)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	got, _ := svc.Get(order.ID)
	if got.Status != entity.StatusCompleted {
		t.Fatalf("status regressed to %s", got.Status)
	}
}

func TestCourierAdvance_ForbiddenTargets(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	svc := newOrderService(db, nil)

	order := newPlacedDelivery(t, svc, cartSvc, "client1")

	for _, target := range []entity.OrderStatus{entity.StatusPending, entity.StatusAccepted, "BOGUS"} {
		if err := svc.CourierAdvance(order.ID, target); !errors.Is(err, ErrForbiddenTransition) {
			t.Errorf("target %s: expected ErrForbiddenTransition, got %v", target, err)
		}
	}
}

func TestCourierAdvance_ReservationRejected(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, "t1", 50000)
	cartSvc := newCartService(db)
	svc := newOrderService(db, nil)

	if _, err := cartSvc.SelectRoom("client1", "t1"); err != nil {
		t.Fatalf("select room: %v", err)
	}
	order, err := svc.Place("client1", &PlaceOrderReq{
		Type:         entity.OrderReservation,
		CustomerName: "Dilnoza",
		Phone:        "998935550011",
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if err := svc.CourierAdvance(order.ID, entity.StatusDelivering); !errors.Is(err, ErrNotDeliveryOrder) {
		t.Errorf("expected ErrNotDeliveryOrder, got %v", err)
	}
}

func TestAccept_PendingOnly(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	rec := &eventRecorder{}
	svc := newOrderService(db, rec)

	order := newPlacedDelivery(t, svc, cartSvc, "client1")

	if err := svc.Accept(order.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	got, _ := svc.Get(order.ID)
	if got.Status != entity.StatusAccepted {
		t.Fatalf("expected ACCEPTED, got %s", got.Status)
	}

	// Accepting twice finds no PENDING row.
	if err := svc.Accept(order.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition on re-accept, got %v", err)
	}
}

func TestCourierQueueExcludesCompleted(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 45000, entity.InStock)
	cartSvc := newCartService(db)
	svc := newOrderService(db, nil)

	first := newPlacedDelivery(t, svc, cartSvc, "client1")
	second := newPlacedDelivery(t, svc, cartSvc, "client2")

	if err := svc.CourierAdvance(first.ID, entity.StatusCompleted); err != nil {
		t.Fatalf("advance: %v", err)
	}

	queue, err := svc.ListActiveDeliveries()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 1 || queue[0].ID != second.ID {
		t.Fatalf("unexpected queue: %+v", queue)
	}
}

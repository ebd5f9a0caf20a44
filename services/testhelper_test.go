package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh shared in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Product{}, &entity.Room{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SaleRecord{}, &entity.Device{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price int64, status entity.StockStatus) entity.Product {
	t.Helper()
	p := entity.Product{
		ID: id, Name: "Taom " + id, Price: price,
		Category: "Asosiy Taomlar",
		Image:    "https://picsum.photos/seed/" + id + "/400/300",
		Status:   status,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedRoom(t *testing.T, db *gorm.DB, id string, price int64) entity.Room {
	t.Helper()
	r := entity.Room{
		ID: id, Name: "Xona " + id, Capacity: 8, Price: price,
		Image:       "https://picsum.photos/seed/" + id + "/400/300",
		IsAvailable: true,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return r
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewRoomRepository(db),
	)
}

// eventRecorder captures published status events.
type eventRecorder struct {
	events []entity.OrderStatus
}

func (r *eventRecorder) PublishStatus(o *entity.Order) {
	r.events = append(r.events, o.Status)
}

func newOrderService(db *gorm.DB, rec *eventRecorder) *OrderService {
	var pub StatusPublisher
	if rec != nil {
		pub = rec
	}
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRoomRepository(db),
		pub,
	)
}

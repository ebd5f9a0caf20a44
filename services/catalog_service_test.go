package services

import (
	"errors"
	"testing"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
)

func TestCatalogService_AddRequiresImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	_, err := svc.Add(&AddProductIn{Name: "Lagmon", Price: 30000, Category: "Asosiy Taomlar"})
	if !errors.Is(err, ErrImageRequired) {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}

	products, _ := svc.List("")
	if len(products) != 0 {
		t.Errorf("catalog changed on rejected add")
	}
}

func TestCatalogService_Add(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	p, err := svc.Add(&AddProductIn{
		Name:     "Lagmon",
		Price:    30000,
		Category: "Asosiy Taomlar",
		Image:    "https://picsum.photos/seed/lagmon/400/300",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(p.ID) != 6 {
		t.Errorf("expected generated 6-char id, got %q", p.ID)
	}
	if p.Status != entity.InStock {
		t.Errorf("new products start IN_STOCK, got %s", p.Status)
	}

	if _, err := svc.Add(&AddProductIn{
		Name: "Pitsa", Price: 50000, Category: "Fast Food",
		Image: "https://picsum.photos/seed/pitsa/400/300",
	}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCatalogService_ToggleStock(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 8000, entity.InStock)
	svc := NewCatalogService(repository.NewProductRepository(db))

	p, err := svc.ToggleStock("p1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if p.Status != entity.OutOfStock {
		t.Fatalf("expected OUT_OF_STOCK, got %s", p.Status)
	}

	p, err = svc.ToggleStock("p1")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if p.Status != entity.InStock {
		t.Fatalf("two toggles should restore IN_STOCK, got %s", p.Status)
	}
}

func TestCatalogService_UpdatePrice(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 8000, entity.InStock)
	svc := NewCatalogService(repository.NewProductRepository(db))

	p, err := svc.UpdatePrice("p1", 9500)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.Price != 9500 {
		t.Errorf("expected price 9500, got %d", p.Price)
	}

	if _, err := svc.UpdatePrice("p1", -1); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative price accepted")
	}
}

func TestCatalogService_Delete(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "p1", 8000, entity.InStock)
	svc := NewCatalogService(repository.NewProductRepository(db))

	if err := svc.Delete("p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	products, _ := svc.List("")
	if len(products) != 0 {
		t.Errorf("product still present after delete")
	}
}

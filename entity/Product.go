package entity

import "time"

type StockStatus string

const (
	InStock    StockStatus = "IN_STOCK"
	OutOfStock StockStatus = "OUT_OF_STOCK"
)

// Toggle flips the stock flag. Two toggles are a no-op.
func (s StockStatus) Toggle() StockStatus {
	if s == InStock {
		return OutOfStock
	}
	return InStock
}

// Label is the customer-facing text shown on the menu.
func (s StockStatus) Label() string {
	if s == InStock {
		return "Bor"
	}
	return "Tugagan"
}

// Categories is the fixed menu category set.
var Categories = []string{"Asosiy Taomlar", "Ichimliklar", "Shirinliklar", "Salatlar"}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type Product struct {
	ID       string      `gorm:"primaryKey" json:"id"`
	Name     string      `json:"name"`
	Price    int64       `json:"price"`
	Category string      `json:"category"`
	Image    string      `json:"image"`
	Status   StockStatus `json:"status"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

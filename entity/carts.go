package entity

import "time"

// Cart belongs to one anonymous client (browser session).
// RoomID holds the in-progress reservation selection; empty when none.
type Cart struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	ClientID string `gorm:"uniqueIndex" json:"clientId"`
	RoomID   string `json:"roomId,omitempty"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Subtotal sums the item lines. Room price is not part of the cart
// subtotal; it is added at reservation checkout.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.UnitPrice * int64(it.Qty)
	}
	return sum
}

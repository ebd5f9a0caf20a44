package entity

import "time"

type OrderType string

const (
	OrderDelivery    OrderType = "delivery"
	OrderReservation OrderType = "reservation"
)

func (t OrderType) Valid() bool {
	return t == OrderDelivery || t == OrderReservation
}

// Order is created once at checkout and never changes afterwards except
// for Status. Items are denormalized copies of the cart lines, so
// deleting a catalog product leaves placed orders intact.
type Order struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	ClientID string    `gorm:"index" json:"-"`
	Type     OrderType `json:"type"`

	Total  int64       `json:"total"`
	Status OrderStatus `json:"status"`

	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	TableID      string `json:"tableId,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
}

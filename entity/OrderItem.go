package entity

// OrderItem is the cart line frozen into the order at checkout.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"index" json:"-"`

	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Qty       int    `json:"quantity"`
}

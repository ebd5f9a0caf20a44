package entity

// CartItem snapshots the product name and price at add time, so later
// catalog edits never change a line that is already in the cart.
// One line per product: re-adding the same product bumps Qty.
type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	CartID uint `gorm:"index:idx_cart_product,unique" json:"-"`

	ProductID string `gorm:"index:idx_cart_product,unique" json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Qty       int    `json:"quantity"`
}

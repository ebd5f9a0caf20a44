package repository

import (
	"errors"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the client's cart; an empty, unsaved cart
// when none exists yet, so the frontend always has something to render.
func (r *CartRepository) GetCartWithItems(clientID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_id = ?", clientID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{ClientID: clientID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(clientID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_id = ?", clientID).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{ClientID: clientID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges by product: the same product lands on one line with
// a bumped quantity, keeping the price snapshot from the first add.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, row.ProductID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, clientID, productID string, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, clientID, productID)
	}
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE product_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE client_id = ?)
	`, qty, productID, clientID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, clientID, productID string) error {
	return tx.
		Where("product_id = ? AND cart_id IN (SELECT id FROM carts WHERE client_id = ?)", productID, clientID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) SetRoom(tx *gorm.DB, clientID, roomID string) error {
	return tx.Model(&entity.Cart{}).
		Where("client_id = ?", clientID).
		Update("room_id", roomID).Error
}

// ClearCart drops every line and the room selection, the post-checkout
// reset.
func (r *CartRepository) ClearCart(tx *gorm.DB, clientID string) error {
	var c entity.Cart
	if err := tx.Where("client_id = ?", clientID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).Update("room_id", "").Error
}

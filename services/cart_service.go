package services

import (
	"errors"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"gorm.io/gorm"
)

var ErrRoomUnavailable = errors.New("room is not available")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ProdRepo *repository.ProductRepository
	RoomRepo *repository.RoomRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, rr *repository.RoomRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProdRepo: pr, RoomRepo: rr}
}

type AddToCartIn struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

func (s *CartService) Get(clientID string) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithItems(clientID)
	if err != nil {
		return nil, 0, err
	}
	return c, c.Subtotal(), nil
}

// Add upserts a cart line with a name/price snapshot taken now. Adding
// an out-of-stock product is a silent no-op, like the disabled menu
// button it backs.
func (s *CartService) Add(clientID string, in *AddToCartIn) (*entity.Cart, error) {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	p, err := s.ProdRepo.Get(in.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := s.CartRepo.GetOrCreateCart(clientID)
	if err != nil {
		return nil, err
	}

	if p.Status == entity.OutOfStock {
		return s.CartRepo.GetCartWithItems(clientID)
	}

	line := &entity.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Qty:       in.Qty,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetCartWithItems(clientID)
}

func (s *CartService) UpdateQty(clientID, productID string, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, clientID, productID, qty)
	})
}

func (s *CartService) RemoveItem(clientID, productID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, clientID, productID)
	})
}

func (s *CartService) Clear(clientID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, clientID)
	})
}

// SelectRoom pins the reservation choice onto the cart so checkout can
// price it and clear it in one place.
func (s *CartService) SelectRoom(clientID, roomID string) (*entity.Room, error) {
	room, err := s.RoomRepo.Get(roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsAvailable {
		return nil, ErrRoomUnavailable
	}
	if _, err := s.CartRepo.GetOrCreateCart(clientID); err != nil {
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetRoom(tx, clientID, roomID)
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (s *CartService) ClearRoom(clientID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetRoom(tx, clientID, "")
	})
}

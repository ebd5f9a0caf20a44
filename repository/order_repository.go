package repository

import (
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForClient returns the client's orders newest first, matching the
// prepend ordering of the tracker view.
func (r *OrderRepository) ListForClient(clientID string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("client_id = ?", clientID).
		Preload("Items").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListActiveDeliveries is the courier queue: delivery orders that are
// not yet completed, newest first.
func (r *OrderRepository) ListActiveDeliveries() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("type = ? AND status <> ?", entity.OrderDelivery, entity.StatusCompleted).
		Preload("Items").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// UpdateStatusGuard advances the status only when the current value is
// in the allowed "from" set. Zero rows affected means the transition
// was illegal (or raced) and nothing changed.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id string, from []entity.OrderStatus, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

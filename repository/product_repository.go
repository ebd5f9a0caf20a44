package repository

import (
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// List returns products newest first, optionally for one category.
func (r *ProductRepository) List(category string) ([]entity.Product, error) {
	q := r.DB.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entity.Product
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProductRepository) Get(id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

// Delete removes the catalog row unconditionally. Placed orders keep
// their own item copies, so nothing else is touched.
func (r *ProductRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Product{}, "id = ?", id).Error
}

package services

import (
	"errors"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/utils"
)

var (
	// ErrImageRequired mirrors the "Rasm yuklang" guard on the add form.
	ErrImageRequired   = errors.New("image is required")
	ErrInvalidImage    = errors.New("invalid image reference")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidPrice    = errors.New("price must be non-negative")
)

type CatalogService struct {
	Repo *repository.ProductRepository
}

func NewCatalogService(repo *repository.ProductRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

type AddProductIn struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price"`
	Category string `json:"category" binding:"required"`
	Image    string `json:"image"`
}

func (s *CatalogService) List(category string) ([]entity.Product, error) {
	return s.Repo.List(category)
}

func (s *CatalogService) Categories() []string {
	return entity.Categories
}

func (s *CatalogService) Add(in *AddProductIn) (*entity.Product, error) {
	if in.Image == "" {
		return nil, ErrImageRequired
	}
	if !utils.ValidImageRef(in.Image) {
		return nil, ErrInvalidImage
	}
	if !entity.ValidCategory(in.Category) {
		return nil, ErrUnknownCategory
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}

	p := &entity.Product{
		ID:       utils.NewToken(6),
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
		Image:    in.Image,
		Status:   entity.InStock,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ToggleStock(id string) (*entity.Product, error) {
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	p.Status = p.Status.Toggle()
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdatePrice(id string, price int64) (*entity.Product, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	p.Price = price
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) UpdateImage(id, image string) (*entity.Product, error) {
	if !utils.ValidImageRef(image) {
		return nil, ErrInvalidImage
	}
	p, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	p.Image = image
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the product without checking in-flight orders; order
// items are snapshots and survive on their own.
func (s *CatalogService) Delete(id string) error {
	return s.Repo.Delete(id)
}

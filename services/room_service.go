package services

import (
	"errors"

	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/utils"
)

var ErrInvalidCapacity = errors.New("capacity must be positive")

type RoomService struct {
	Repo *repository.RoomRepository
}

func NewRoomService(repo *repository.RoomRepository) *RoomService {
	return &RoomService{Repo: repo}
}

type AddRoomIn struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
}

func (s *RoomService) List() ([]entity.Room, error) {
	return s.Repo.List()
}

func (s *RoomService) Add(in *AddRoomIn) (*entity.Room, error) {
	if in.Image == "" {
		return nil, ErrImageRequired
	}
	if !utils.ValidImageRef(in.Image) {
		return nil, ErrInvalidImage
	}
	if in.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if in.Price < 0 {
		return nil, ErrInvalidPrice
	}

	room := &entity.Room{
		ID:          utils.NewToken(6),
		Name:        in.Name,
		Capacity:    in.Capacity,
		Price:       in.Price,
		Image:       in.Image,
		IsAvailable: true,
	}
	if err := s.Repo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) UpdatePrice(id string, price int64) (*entity.Room, error) {
	if price < 0 {
		return nil, ErrInvalidPrice
	}
	room, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	room.Price = price
	if err := s.Repo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) UpdateImage(id, image string) (*entity.Room, error) {
	if !utils.ValidImageRef(image) {
		return nil, ErrInvalidImage
	}
	room, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	room.Image = image
	if err := s.Repo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) ToggleAvailability(id string) (*entity.Room, error) {
	room, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	room.IsAvailable = !room.IsAvailable
	if err := s.Repo.Save(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) Delete(id string) error {
	return s.Repo.Delete(id)
}

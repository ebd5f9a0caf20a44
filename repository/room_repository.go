package repository

import (
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

type RoomRepository struct{ DB *gorm.DB }

func NewRoomRepository(db *gorm.DB) *RoomRepository { return &RoomRepository{DB: db} }

func (r *RoomRepository) List() ([]entity.Room, error) {
	var out []entity.Room
	if err := r.DB.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomRepository) Get(id string) (*entity.Room, error) {
	var room entity.Room
	if err := r.DB.First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) Create(room *entity.Room) error {
	return r.DB.Create(room).Error
}

func (r *RoomRepository) Save(room *entity.Room) error {
	return r.DB.Save(room).Error
}

func (r *RoomRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Room{}, "id = ?", id).Error
}

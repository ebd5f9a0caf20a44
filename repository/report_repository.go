package repository

import (
	"github.com/karimovdostonbek1992-commits/KAMRON-city/entity"
	"gorm.io/gorm"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

func (r *ReportRepository) ListSales() ([]entity.SaleRecord, error) {
	var out []entity.SaleRecord
	err := r.DB.Order("date ASC").Find(&out).Error
	return out, err
}

func (r *ReportRepository) ListDevices() ([]entity.Device, error) {
	var out []entity.Device
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *ReportRepository) DeleteDevice(id string) error {
	return r.DB.Delete(&entity.Device{}, "id = ?", id).Error
}

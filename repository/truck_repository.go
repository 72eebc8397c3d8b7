package repository

import (
	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type TruckRepository struct {
	DB *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{DB: db}
}

func (r *TruckRepository) List() ([]entity.Truck, error) {
	var out []entity.Truck
	err := r.DB.Order("plate_number").Find(&out).Error
	return out, err
}

func (r *TruckRepository) GetByID(id uint) (*entity.Truck, error) {
	var t entity.Truck
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TruckRepository) Create(t *entity.Truck) error {
	return r.DB.Create(t).Error
}

func (r *TruckRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Truck{}).Where("id = ?", id).Updates(updates).Error
}

func (r *TruckRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Truck{}, id).Error
}

func (r *TruckRepository) UpdateLocation(id uint, lat, lng float64) error {
	return r.DB.Model(&entity.Truck{}).Where("id = ?", id).
		Updates(map[string]any{"latitude": lat, "longitude": lng}).Error
}

func (r *TruckRepository) CountByStatus(status string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Truck{}).Where("status = ?", status).Count(&cnt).Error
	return cnt, err
}

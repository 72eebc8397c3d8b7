package repository

import (
	"errors"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type FishRepository struct {
	DB *gorm.DB
}

func NewFishRepository(db *gorm.DB) *FishRepository {
	return &FishRepository{DB: db}
}

// ---------------- Fish types ----------------

func (r *FishRepository) ListActive() ([]entity.FishType, error) {
	var out []entity.FishType
	err := r.DB.Where("is_active = ?", true).Order("name").Find(&out).Error
	return out, err
}

func (r *FishRepository) ListAll() ([]entity.FishType, error) {
	var out []entity.FishType
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *FishRepository) GetByID(id uint) (*entity.FishType, error) {
	var ft entity.FishType
	if err := r.DB.First(&ft, id).Error; err != nil {
		return nil, err
	}
	return &ft, nil
}

func (r *FishRepository) Create(ft *entity.FishType) error {
	return r.DB.Create(ft).Error
}

func (r *FishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FishType{}).Where("id = ?", id).Updates(updates).Error
}

// All of the given ids must exist and be active.
func (r *FishRepository) AllActive(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var cnt int64
	if err := r.DB.Model(&entity.FishType{}).
		Where("id IN ? AND is_active = ?", ids, true).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(ids)), nil
}

// ---------------- Market prices ----------------

// UpsertPrice keeps one row per (fish type, day).
func (r *FishRepository) UpsertPrice(p *entity.FishPrice) error {
	day := p.PriceDate.Truncate(24 * time.Hour)
	p.PriceDate = day

	var existing entity.FishPrice
	err := r.DB.Where("fish_type_id = ? AND price_date = ?", p.FishTypeID, day).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(p).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(map[string]any{
		"retail_price":    p.RetailPrice,
		"wholesale_price": p.WholesalePrice,
		"market_name":     p.MarketName,
	}).Error
}

func (r *FishRepository) ListPrices(fishTypeID uint, from, to time.Time) ([]entity.FishPrice, error) {
	var out []entity.FishPrice
	q := r.DB.Where("price_date >= ? AND price_date <= ?", from, to).Order("price_date")
	if fishTypeID != 0 {
		q = q.Where("fish_type_id = ?", fishTypeID)
	}
	err := q.Find(&out).Error
	return out, err
}

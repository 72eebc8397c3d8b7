package repository

import (
	"errors"
	"time"

	"github.com/GishenCBoraluwa/fisheries-management/entity"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	DB *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{DB: db}
}

// Upsert keeps one row per (fish type, date).
func (r *PredictionRepository) Upsert(p *entity.DailyPricePrediction) error {
	var existing entity.DailyPricePrediction
	err := r.DB.Where("fish_type_id = ? AND prediction_date = ?",
		p.FishTypeID, p.PredictionDate).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(p).Error
	}
	if err != nil {
		return err
	}
	return r.DB.Model(&existing).Updates(map[string]any{
		"retail_price":    p.RetailPrice,
		"wholesale_price": p.WholesalePrice,
		"confidence":      p.Confidence,
	}).Error
}

func (r *PredictionRepository) ListForFishType(fishTypeID uint, from time.Time) ([]entity.DailyPricePrediction, error) {
	var out []entity.DailyPricePrediction
	err := r.DB.Where("fish_type_id = ? AND prediction_date >= ?", fishTypeID, from).
		Order("prediction_date").
		Find(&out).Error
	return out, err
}

func (r *PredictionRepository) CountForDate(date time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.DailyPricePrediction{}).
		Where("prediction_date = ?", date).Count(&cnt).Error
	return cnt, err
}

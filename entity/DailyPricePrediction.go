package entity

import (
	"time"

	"gorm.io/gorm"
)

type DailyPricePrediction struct {
	gorm.Model
	FishTypeID uint     `gorm:"uniqueIndex:idx_prediction_fish_day;not null" json:"fishTypeId"`
	FishType   FishType `json:"-"`

	PredictionDate time.Time `gorm:"uniqueIndex:idx_prediction_fish_day;not null" json:"predictionDate"`
	RetailPrice    float64   `json:"retailPrice"`    // LKR/kg
	WholesalePrice float64   `json:"wholesalePrice"` // LKR/kg
	Confidence     float64   `json:"confidence"`
}
